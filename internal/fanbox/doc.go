// Package fanbox implements the FANBOX API client: the supporting-plan
// list, the paginated per-creator post listing, and post detail.
//
// Listing pages are fetched with a fixed delay between requests. This is
// plain pacing to stay clear of rate limits, not a token-bucket limiter.
//
// Raw response shapes live in the dto subpackage; conversion to model
// types happens once, at decode time, so the rest of the program never
// sees the API's two alternative body representations.
package fanbox
