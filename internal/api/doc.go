// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the chat widget's JSON calls to the chat
// service and maps service errors to status codes and safe messages.
package api
