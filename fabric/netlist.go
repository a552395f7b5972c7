package fabric

// NetList maps a source node to an ordered set of member nodes: the desired
// sinks when used as the routing request, or the fully expanded routing
// tree (source, sinks, and every interior node visited) when used as a
// Pathfinder result. Insertion order of both sources and members is
// preserved so that iteration is deterministic.
type NetList struct {
	order   []Node
	members map[Node][]Node
	present map[Node]map[Node]bool
}

// NewNetList returns an empty NetList.
func NewNetList() *NetList {
	return &NetList{
		members: make(map[Node][]Node),
		present: make(map[Node]map[Node]bool),
	}
}

// Add inserts member into source's set, first-seen order preserved. It is a
// no-op if member is already a member of source's set, and registers source
// itself (with no members yet) if this is its first appearance.
func (nl *NetList) Add(source Node, member Node) {
	nl.ensureSource(source)
	if nl.present[source][member] {
		return
	}
	nl.present[source][member] = true
	nl.members[source] = append(nl.members[source], member)
}

// ensureSource registers source with an empty member set if not already
// present, preserving Sources() insertion order even for sourceless nets.
func (nl *NetList) ensureSource(source Node) {
	if _, ok := nl.present[source]; ok {
		return
	}
	nl.present[source] = make(map[Node]bool)
	nl.order = append(nl.order, source)
}

// EnsureSource registers source (with no members) if it is not already
// present, without adding any member to it.
func (nl *NetList) EnsureSource(source Node) {
	nl.ensureSource(source)
}

// Sources returns every source node, in first-seen order.
func (nl *NetList) Sources() []Node {
	return nl.order
}

// Members returns source's member nodes in first-seen order.
func (nl *NetList) Members(source Node) []Node {
	return nl.members[source]
}

// Contains reports whether member belongs to source's set.
func (nl *NetList) Contains(source, member Node) bool {
	return nl.present[source][member]
}

// Len returns the number of distinct sources.
func (nl *NetList) Len() int {
	return len(nl.order)
}
