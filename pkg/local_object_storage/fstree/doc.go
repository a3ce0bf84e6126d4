/*
Package fstree implements an object storage that keeps objects as plain files
in a filesystem tree.

The concept behind it is rather simple: the object key names the file that
holds the object payload. A key is split on "/" and its segments are joined
below the storage root, one directory per segment, with the last segment
being the file name. An object put under the key "reports/2024/q1.txt" into
a storage rooted at /var/lib/cellar ends up as:

	/var/lib/cellar/
	└── reports
	    └── 2024
	        └── q1.txt

Intermediate directories are created on demand during writes and are never
removed, not even when the last object below them is deleted. Files hold raw
payload bytes with no framing or metadata, so a tree can be inspected,
backed up and restored with ordinary filesystem tools.

Keys are validated before any filesystem access, see
[github.com/cellar-dev/cellar-node/internal/keyutil.Split] for the exact
rules. Validation guarantees that every mapped path stays below the root.

The storage performs no locking of its own. Reads and writes of distinct
keys are independent, while concurrent writes of the same key race on the
same file and the resulting content is whichever write finishes last, or a
mix of both. Callers that need serialization of same-key writes must provide
it externally.
*/
package fstree
