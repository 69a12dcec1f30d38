/*
Package auth validates principal tokens issued by the external identity
provider.

# Principal Tokens

Tokens use HMAC-SHA256 to bind a user id and role to a shared salt:

	token := auth.GenerateUserToken(userID, role, salt)
	principal, err := auth.ParseUserToken(token, salt)

The token format is userID.role.signature with a URL-safe base64
signature. Because the signature is deterministic from the user id,
role, and salt, tokens can be validated without a credential store
round-trip: the identity provider and this service only need to share
the salt.

Credential issuance, password reset, and OTP flows live entirely in the
identity provider; the only thing this service learns from a token is
the {userId, role} pair. A voter's eligibility (verification status) is
read separately from the user_account table.
*/
package auth
