// Package session ties the contextkit pieces into one conversation state.
//
// A Session owns a history log and a pinned-file store behind a single
// mutex, configured once at construction:
//
//	sess, err := session.New(session.Config{
//	    SystemPrompt: prompt,
//	    MaxTokens:    tokens.GetModelLimit("deepseek-chat"),
//	})
//	if err != nil {
//	    // invalid configuration is rejected eagerly
//	}
//
// The interactive loop drives it:
//
//	sess.AddFile("main.go", contents)          // user pinned a file
//	entries := sess.BuildPayload(userInput)    // just before the request
//	// ... call the model with entries ...
//	sess.AppendMessage(history.RoleUser, userInput)
//	sess.AppendMessage(history.RoleAssistant, reply)
//
// and the status line queries it:
//
//	report := sess.Usage()
//
// All operations are CPU-bound and serialized per session, so a background
// goroutine (see the watch package) may safely pin files while a request
// payload is being built.
package session
