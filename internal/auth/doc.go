// Package auth provides authentication and authorization for
// persona-gateway.
//
// # Components
//
//   - TokenService: issues and verifies HS256 JWTs carrying the user id
//     (sub), email, and admin flag, valid for 7 days. Tokens are the sole
//     proof of identity; there is no server-side session or revocation.
//   - Service: the registration and login flows. Registration validates
//     input, hashes the password with bcrypt, and persists through the
//     user store's serialized append-if-absent primitive. Login conflates
//     unknown-email and wrong-password failures on purpose.
//   - RequireAuth / RequireAdmin: composable HTTP middleware. RequireAuth
//     verifies the bearer token and attaches an Identity to the request
//     context; RequireAdmin reads that Identity and demands the admin
//     flag. RequireAdmin must always be stacked after RequireAuth.
//
// # Error mapping
//
// ErrInvalidInput maps to 400, ErrAlreadyExists to 409,
// ErrInvalidCredentials to 401, token failures to 401, and ErrNoSecret to
// 500 (a deployment problem surfaced per-request, never fatal to the
// process).
package auth
