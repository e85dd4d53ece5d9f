// Package gateway is the client of the backend identity service.
//
// It exposes the Identity interface (stateless async calls: login, register,
// fetch current user, social login, logout, password reset) and an HTTP
// implementation speaking the /api/auth REST contract. All failures are
// normalized to *autherr.Error at this boundary; nothing above the gateway
// sees transport errors or status codes.
package gateway
