package windfind

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind discriminates the three node shapes of a business record tree.
type Kind int

// Node kinds.
const (
	KindLeaf Kind = iota
	KindObject
	KindList
)

// Node is one node of a business record tree: a scalar leaf (null until
// resolved), an object with ordered named fields, or a list of subtrees.
// The zero value is a null leaf.
type Node struct {
	Kind   Kind
	Value  *string // leaf value; nil when unresolved
	Fields []Field // object fields in schema order
	Items  []*Node // list elements
}

// Field is a named child of an object node.
type Field struct {
	Name string
	Node *Node
}

// NewLeaf returns an unresolved leaf node.
func NewLeaf() *Node {
	return &Node{Kind: KindLeaf}
}

// LeafOf returns a leaf node holding s.
func LeafOf(s string) *Node {
	return &Node{Kind: KindLeaf, Value: &s}
}

// NewObject returns an object node with the given fields.
func NewObject(fields ...Field) *Node {
	return &Node{Kind: KindObject, Fields: fields}
}

// NewList returns an empty list node.
func NewList() *Node {
	return &Node{Kind: KindList}
}

// Null reports whether the node is an unresolved leaf.
func (n *Node) Null() bool {
	return n == nil || (n.Kind == KindLeaf && n.Value == nil)
}

// Field returns the named child of an object node, or nil.
func (n *Node) Field(name string) *Node {
	if n == nil || n.Kind != KindObject {
		return nil
	}
	for _, f := range n.Fields {
		if f.Name == name {
			return f.Node
		}
	}
	return nil
}

// Get walks object fields along path and returns the node found, or nil.
func (n *Node) Get(path ...string) *Node {
	cur := n
	for _, name := range path {
		cur = cur.Field(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Populated reports whether the node at path is a leaf holding a
// non-empty value.
func (n *Node) Populated(path ...string) bool {
	leaf := n.Get(path...)
	return leaf != nil && leaf.Kind == KindLeaf && leaf.Value != nil && *leaf.Value != ""
}

// Merge folds other into n. The merge is monotonic: a populated leaf is
// never overwritten, a leaf only transitions null to non-null.
//
//   - object vs object: recurse key by key; a key that is absent or
//     currently null in n takes the new subtree wholesale.
//   - list vs list: append, no deduplication.
//   - anything else: no-op, which keeps the populated side.
func (n *Node) Merge(other *Node) {
	if n == nil || other == nil {
		return
	}
	switch {
	case n.Kind == KindObject && other.Kind == KindObject:
		for _, of := range other.Fields {
			cur := n.Field(of.Name)
			switch {
			case cur == nil:
				n.Fields = append(n.Fields, Field{Name: of.Name, Node: of.Node})
			case cur.Null():
				n.setField(of.Name, of.Node)
			default:
				cur.Merge(of.Node)
			}
		}
	case n.Kind == KindList && other.Kind == KindList:
		n.Items = append(n.Items, other.Items...)
	}
}

func (n *Node) setField(name string, child *Node) {
	for i := range n.Fields {
		if n.Fields[i].Name == name {
			n.Fields[i].Node = child
			return
		}
	}
}

// LocationComplete reports whether the location section holds enough
// data to stop fetching further location pages for the domain.
func (n *Node) LocationComplete() bool {
	return n.Populated(CategoryLocation, "name") &&
		n.Populated(CategoryLocation, "city")
}

// PricingComplete reports whether the pricing section holds enough data
// to stop fetching further pricing pages for the domain.
func (n *Node) PricingComplete() bool {
	for _, path := range [][]string{
		{CategoryPricing, "windsurfing", "hourly_rate"},
		{CategoryPricing, "windsurfing", "daily_rate"},
		{CategoryPricing, "surfing", "availability"},
		{CategoryPricing, "surfing", "hourly_rate"},
		{CategoryPricing, "surfing", "daily_rate"},
		{CategoryPricing, "equipment_rental", "rental_rate_per_hour"},
		{CategoryPricing, "equipment_rental", "rental_rate_per_day"},
	} {
		if !n.Populated(path...) {
			return false
		}
	}
	return true
}

// NewRecord returns an empty business record: the full schema with every
// leaf unresolved. The same tree doubles as the extraction template.
func NewRecord() *Node {
	field := func(name string, node *Node) Field {
		return Field{Name: name, Node: node}
	}
	return NewObject(
		field(CategoryLocation, NewObject(
			field("name", NewLeaf()),
			field("city", NewLeaf()),
			field("contact_details", NewObject(
				field("phone", NewLeaf()),
				field("email", NewLeaf()),
			)),
			field("comments", NewLeaf()),
		)),
		field(CategoryPricing, NewObject(
			field("windsurfing", NewObject(
				field("hourly_rate", NewLeaf()),
				field("daily_rate", NewLeaf()),
				field("package_3_to_7_days", NewLeaf()),
			)),
			field("surfing", NewObject(
				field("availability", NewLeaf()),
				field("hourly_rate", NewLeaf()),
				field("daily_rate", NewLeaf()),
			)),
			field("equipment_rental", NewObject(
				field("included_in_pricing", NewLeaf()),
				field("rental_rate_per_hour", NewLeaf()),
				field("rental_rate_per_day", NewLeaf()),
			)),
			field("equipment_insurance", NewObject(
				field("included", NewLeaf()),
				field("cost_per_day", NewLeaf()),
			)),
			field("comments", NewLeaf()),
		)),
		field("courses", NewList()),
		field(CategoryTransport, NewObject(
			field("pickup_service", NewObject(
				field("availability", NewLeaf()),
				field("cost", NewLeaf()),
				field("from_airport", NewLeaf()),
				field("from_city_center", NewLeaf()),
			)),
		)),
	)
}

// MarshalJSON renders the tree with fields in schema order. Unresolved
// leaves marshal as null, empty lists as [].
func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case KindObject:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, f := range n.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(f.Name)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
			child, err := json.Marshal(f.Node)
			if err != nil {
				return nil, err
			}
			buf.Write(child)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case KindList:
		if n.Items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(n.Items)
	default:
		if n.Value == nil {
			return []byte("null"), nil
		}
		return json.Marshal(*n.Value)
	}
}

// UnmarshalJSON parses arbitrary JSON into a tree. Objects keep document
// field order; scalars other than null become string leaves (numbers and
// booleans are coerced, matching provider responses that return bare
// numbers for rates).
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	parsed, err := decodeNode(dec)
	if err != nil {
		return err
	}
	*n = *parsed
	return nil
}

func decodeNode(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFrom(dec, tok)
}

func decodeFrom(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			node := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, Errorf(EINVALID, "object key is not a string")
				}
				child, err := decodeNode(dec)
				if err != nil {
					return nil, err
				}
				node.Fields = append(node.Fields, Field{Name: key, Node: child})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return node, nil
		case '[':
			node := NewList()
			for dec.More() {
				child, err := decodeNode(dec)
				if err != nil {
					return nil, err
				}
				node.Items = append(node.Items, child)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return node, nil
		}
		return nil, Errorf(EINVALID, "unexpected delimiter %q", t.String())
	case string:
		return LeafOf(t), nil
	case json.Number:
		return LeafOf(t.String()), nil
	case bool:
		return LeafOf(strconv.FormatBool(t)), nil
	case nil:
		return NewLeaf(), nil
	default:
		return nil, Errorf(EINVALID, "unsupported JSON token")
	}
}
