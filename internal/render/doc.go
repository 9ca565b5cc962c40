// Package render generates the deployment artifacts: the framework settings
// file consumed by the web application at process start, and the web-server
// configuration fragment that adds CORS headers and static file serving.
//
// Both artifacts are rendered with text/template against the typed
// [models.SiteSettings] document and written atomically (temp file + rename
// in the target directory), so re-running the hook overwrites cleanly
// instead of appending.
package render
