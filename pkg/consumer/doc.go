// Package consumer keeps a lazily fetched copy of a provider's Glow tree.
//
// A Consumer owns the cached tree and a Sender used to transmit request
// branches. Responses from the provider are handed to HandleMessage, which
// decodes them, merges them into the cache and then runs the callbacks that
// were waiting on the merged nodes:
//
//	c := consumer.New(conn, consumer.DefaultConfig())
//	go func() {
//	    for msg := range conn.Messages() {
//	        _ = c.HandleMessage(msg)
//	    }
//	}()
//	c.ResolvePath(glow.ParsePath("io/gain"), func(n glow.TreeNode, err error) {
//	    ...
//	})
//
// All access to the cached tree is serialised by one mutex. Callbacks run
// after the mutex is released, so they may call back into the Consumer.
// Reading the tree from a callback is safe as long as a single goroutine
// delivers messages; otherwise use View.
package consumer
