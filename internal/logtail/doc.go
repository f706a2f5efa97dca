// Package logtail reads the tail of prayerclock's log file for the in-app
// log view.
//
// Read keeps a ring buffer of maxLines strings while scanning the file once,
// so memory stays bounded no matter how large the log grows. ReadEntries
// layers zerolog JSON decoding on top:
//
//	entries, err := logtail.ReadEntries(cfg.LogPath(), 200)
//	for _, e := range entries {
//		fmt.Println(e.Time.Format("15:04:05"), e.Level, e.Message)
//	}
package logtail
