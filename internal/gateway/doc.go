// Package gateway assembles the HTTP surface of persona-gateway.
//
// # Routes
//
//	GET  /               liveness (unauthenticated)
//	POST /auth/register  create account, returns bearer token
//	POST /auth/login     verify credentials, returns bearer token
//	GET  /auth/me        verified identity projection (auth)
//	GET  /facts          facts snapshot (auth + admin)
//	PUT  /facts          wholesale replace (auth + admin)
//	POST /facts          add one fact (auth + admin)
//	DELETE /facts        remove one fact (auth + admin)
//	POST /ask            persona answer in casual/professional mode (auth)
//	POST /interpret      structured message interpretation (auth)
//
// Handlers map domain errors onto a stable contract: 400 invalid input,
// 401 bad credentials or missing/invalid token, 403 missing admin role,
// 409 duplicate registration, 500 store/model/configuration failures. The
// response body is always {"error": reason} with no internal detail.
//
// The model dependency is the ModelClient interface so handler tests run
// without network access.
package gateway
