// Package omdb provides a client for the OMDb movie-information API.
//
// The API exposes two operations this program needs: a search-by-title
// query returning abbreviated summary records, and a lookup-by-id query
// returning one full detail record. Both take the access key as a
// request parameter and signal success in-band with a Response field,
// so the client has to distinguish three outcomes per call: results,
// a clean miss, and a failure.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := omdb.NewClient(
//		"https://www.omdbapi.com",
//		"your-api-key",
//		logger,
//		omdb.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	results, err := client.Search(ctx, "the matrix")
//	detail, err := client.Details(ctx, "tt0133093")
//
// # Error Handling
//
// Search returns (nil, nil) for a query that matched nothing; an empty
// result is not an error. Transport failures and non-200 statuses come
// back as *APIError, and unsuccessful detail payloads map to
// ErrNotFound:
//
//	if errors.Is(err, omdb.ErrNotFound) {
//		// show "details not available"
//	}
//
// No call is retried; the caller decides what a failure means for the
// user.
package omdb
