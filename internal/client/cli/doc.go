// Package cli provides the interactive GophTasks command-line client.
//
// It wires configuration, the local session store, the API client and an
// interactive REPL. A persisted login is restored on start; every command
// performs one API call, reduces the outcome into state.State and renders
// the relevant slice as a table.
//
// Commands:
//   - register / login / logout
//   - list, page [n], search <query>, filter [true|false|all]
//   - add, edit <id>, done <id>, delete <id>
//   - export [file]
//   - board (full-screen task board)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
