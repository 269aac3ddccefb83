// Package middleware groups the Fiber middleware the start command installs
// in front of every feature.
//
// # Components
//
//   - auth: rejects requests without the configured API key, taken from the
//     X-API-Key header or the api_key query parameter. An empty key disables it.
//   - rayid: tags every request with a ray ID, echoed in the X-Ray-ID response
//     header and read back by logger.WithRayID.
//
// rayid must be registered first so the request log and auth failures carry
// the ray ID.
package middleware
