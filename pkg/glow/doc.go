// Package glow implements the Ember+ element tree and its BER codec.
//
// # Element Tree
//
// A provider exposes a tree of elements rooted in a synthetic Root:
//
//	Root
//	├── Node 1 "io"
//	│   ├── Parameter 1 "gain"
//	│   └── Parameter 2 "mute"
//	└── Node 2 "routing"
//
// Nodes and parameters carry an immutable number that is unique among their
// siblings, optional contents, and an ordered list of children. A nil child
// list means the children are not known yet; an empty one means the element
// is known to have none. Commands are leaf elements carrying only a number
// and are used to address requests such as GetDirectory.
//
// # Wire Format
//
// Every element is an application-tagged sequence whose fields sit in
// context-tagged wrappers:
//
//	Root              [APPLICATION 0]  { [APPLICATION 11] { [0] element ... } }
//	Node              [APPLICATION 3]  { [0] number, [1] NodeContents, [2] children }
//	Parameter         [APPLICATION 1]  { [0] number, [1] ParameterContents, [2] children }
//	Command           [APPLICATION 2]  { [0] number }
//	children          [APPLICATION 4]  { [0] element ... }
//
// Contents are SETs of context-tagged optional fields. A field that is absent
// on the wire stays absent (nil) after decoding and is omitted again when
// encoding.
//
// # Lazy Synchronization
//
// A consumer caches a partial copy of the remote tree. GetDirectory queues a
// single-use callback on a cached node and returns a minimal request branch
// that addresses the node purely by the numbers of its ancestors. The decoded
// response is merged into the cache with Root.Merge, which returns the
// callbacks to run once the merge is complete.
//
// The package is not safe for concurrent use; callers serialise access to a
// tree (see package consumer).
package glow
