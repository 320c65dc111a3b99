// Package history records conversation turns with cached token counts.
//
// The Log is append-only and unbounded. Keeping the full history (rather
// than evicting old turns) means the record of the conversation is never
// silently lost; only the payload sent to the model is truncated, by the
// payload package, at build time.
//
//	log := history.NewLog()
//	log.Append(history.RoleUser, "hello")
//	log.Append(history.RoleAssistant, "hi there")
//	log.TotalTokens()  // combined estimated cost
//
// The payload builder walks the log newest-first:
//
//	log.NewestFirst(func(m history.Message) bool {
//	    // return false to stop
//	    return true
//	})
package history
