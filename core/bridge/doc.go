// Package bridge implements the TCP client for the Unity editor command
// listener.
//
// The editor speaks newline-delimited JSON: each request carries an action
// name, a parameter map, a unique id and a millisecond timestamp; each reply
// echoes the id and carries either a data payload or an error message.
//
// # Retry policy
//
// Call retries transport failures (connect, write, read) up to the configured
// attempt ceiling, sleeping a fixed delay between attempts and reconnecting
// on the next one. Failures the editor reports itself come back as
// *EditorError and are never retried, since the editor received and rejected
// the request.
//
// # Probe
//
// Probe is the standalone reachability check used by the test command: one
// dial with a short timeout, no protocol exchange.
package bridge
