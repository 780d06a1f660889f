// Package executor abstracts the execution context onto which asynchronous
// results are delivered. The client depends only on "a way to run a unit of
// work", decoupling callback delivery from any concrete concurrency
// primitive.
//
//	exec := executor.NewSerial()
//	defer exec.Close()
//	exec.Execute(func() { ... })
package executor
