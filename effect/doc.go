// Package effect represents side-effecting filesystem operations as inert,
// inspectable descriptors that are only executed when handed to a [Handler].
//
// Pattern: Interpreter — an [Effect] is pure data describing what should
// happen; a Handler decides how it happens. Code written against the Handler
// contract runs unchanged against the real [FSHandler] and the canned
// [MockHandler], so production and test code share the identical call path.
package effect
