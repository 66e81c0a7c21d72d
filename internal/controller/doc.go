// Package controller owns the session state behind the main window.
//
// User actions and worker results travel as typed messages over a single
// channel. Run is the only consumer: it applies each message on the UI
// thread through a Dispatcher, so the session is never touched from a
// background goroutine. Fetches and downloads run in their own goroutine
// and report back with the id of the operation that started them.
package controller
