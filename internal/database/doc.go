// Package database provides the PostgreSQL readiness gate and catalog
// checks the deployment hook runs around the external provisioning
// commands.
//
// The hook never creates or migrates the application schema itself; that is
// the job of the external database-creation script and the framework's
// migration command. This package only answers two questions:
//
//   - is the database server accepting connections yet (WaitUntilReady)?
//   - does the application database exist (DatabaseExists)?
package database
