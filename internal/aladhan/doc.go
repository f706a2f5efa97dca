// Package aladhan provides an HTTP client for the Al Adhan prayer times API.
//
// # Overview
//
// Only one endpoint is used: GET /v1/timingsByCity/{DD-MM-YYYY} with city,
// country and method query parameters. The response envelope carries a
// numeric code that mirrors the HTTP status; anything other than 200 is an
// error even when the transport succeeded.
//
// # Usage
//
//	client, err := aladhan.NewClient(aladhan.DefaultBaseURL)
//	if err != nil {
//		return err
//	}
//	day, err := client.FetchDay(ctx, aladhan.Query{
//		Date:    time.Now(),
//		City:    "Bani Suwayf",
//		Country: "Egypt",
//		Method:  5,
//	})
//
// Timings are returned as raw strings; package prayer turns them into a
// TimeTable.
//
// # Error Handling
//
//   - transport failures: "execute request: ..."
//   - HTTP status >= 400: "api <path> returned status N: <body>"
//   - envelope code != 200: "api returned code N: <status>"
//   - malformed JSON: "decode response: ..."
package aladhan
