// Package provision runs the external commands of the deployment hook:
// the database-creation script, the framework migration command, and the
// static-asset collection command.
//
// Steps run sequentially and fail fast. A failing step stops the run and is
// reported as a *StepError so the caller can map it to the conventional
// post-install failure exit code.
package provision
