// Package config provides the one-shot configuration resolver for the bridge.
//
// Resolution combines three layers, lowest precedence first:
//
//  1. Compiled-in defaults (Default)
//  2. Environment variables and an optional .env file (Load)
//  3. Command-line overrides (ParseOverrides / Apply)
//
// Resolve composes all three and validates the result. It is called exactly
// once at process start; the returned Config is immutable by convention and
// is handed to consumers explicitly rather than through a mutable global.
//
// # Command-line surface
//
// Only three fields are exposed as flags: --unity-host, --unity-port and
// --log-level. The remaining fields (listen port, connection timeout, buffer
// size, retry policy, log format) are internal tuning and can only be set
// through the environment, e.g.:
//
//	UNITY_CONNECT_TIMEOUT=30 SERVER_PORT=7500 unity-bridge start
//
// # Errors
//
// Malformed or unrecognized arguments wrap ErrArgument; a resolved value
// outside its allowed range wraps ErrValidation. Both are fatal to startup,
// and the entry point is expected to print usage and exit non-zero.
//
// # Usage
//
//	cfg, err := config.Resolve(os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Unity.Host)
package config
