// Package config provides configuration loading, merging, and validation
// facilities for the deployment hook.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. Validation runs on the
// merged result and reports every missing required environment variable at
// once, so a misconfigured deployment fails before any file is written or
// any external command runs.
package config
