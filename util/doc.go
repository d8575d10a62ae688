// Package util holds small helpers shared by the gateway packages: size
// parsing for body limits, secret masking for logs, and input cleanup.
package util
