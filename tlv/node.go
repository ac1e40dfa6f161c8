// Copyright The Notary Project Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tlv

import "fmt"

// Node is a decoded TLV. It never owns its bytes: Wire and Value are
// subslices of the buffer given to the Parser and must not be modified.
//
// For primitive nodes Children is nil. For constructed nodes Children holds
// the members in encoding order, and Value spans their encodings.
type Node struct {
	TypeID TypeID

	// Offset is the position of the first identifier octet in the input.
	Offset int

	// Start and End delimit the content octets in the input. End-Start is
	// the declared length.
	Start int
	End   int

	// Wire is the complete encoding, input[Offset:End].
	Wire []byte

	// Value is the content octets, input[Start:End].
	Value []byte

	Children []*Node
}

// Len returns the declared length of the content octets.
func (n *Node) Len() int {
	return n.End - n.Start
}

// IsConstructed reports whether n uses the constructed encoding.
func (n *Node) IsConstructed() bool {
	return n.TypeID.Constructed
}

// Is reports whether n has the given class and tag number.
func (n *Node) Is(class Class, tag TagNumber) bool {
	return n.TypeID.Class == class && n.TypeID.Tag == tag
}

// String returns a one-line description of n.
func (n *Node) String() string {
	if n.TypeID.Constructed {
		return fmt.Sprintf("%s offset=%d len=%d members=%d", n.TypeID, n.Offset, n.Len(), len(n.Children))
	}
	return fmt.Sprintf("%s offset=%d len=%d", n.TypeID, n.Offset, n.Len())
}

// WalkFunc is called by Walk for each node. depth is 0 for the nodes passed
// to Walk.
type WalkFunc func(n *Node, depth int) error

// Walk visits nodes and their members depth-first, in encoding order. It
// stops at the first error returned by fn.
func Walk(nodes []*Node, fn WalkFunc) error {
	return walk(nodes, 0, fn)
}

func walk(nodes []*Node, depth int, fn WalkFunc) error {
	for _, n := range nodes {
		if err := fn(n, depth); err != nil {
			return err
		}
		if err := walk(n.Children, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
