// Package middleware provides HTTP middleware shared by the API routes.
package middleware
