package tess

import "math"

// hashThreshold is the vertex count (in coordinates) above which ear tests
// use the Z-order index instead of scanning the whole ring.
const hashThreshold = 80 * 2

// node is a vertex in the circular doubly linked ring used by Earcut.
type node struct {
	i    int
	x, y float64

	prev, next *node

	// z-order curve value and links, valid once the ring is indexed
	z            int32
	prevZ, nextZ *node

	// steiner marks isolated hole points that must not be filtered out
	steiner bool
}

// Earcut triangulates a polygon given as flat x,y coordinates. holes lists
// the vertex index at which each hole ring starts; the outer ring occupies
// the vertices before the first hole. The result is a flat list of vertex
// index triples.
//
// Rings with more than 80 vertices are indexed along a Z-order curve so that
// the point-in-ear rejection only visits candidates inside the ear's bounding
// box. When ear clipping stalls, the ring is filtered, local
// self-intersections are cured, and as a last resort the polygon is split
// along a valid diagonal and both halves are clipped independently.
func Earcut(coords []float64, holes []int) []int {
	outerLen := len(coords)
	if len(holes) > 0 {
		outerLen = holes[0] * 2
	}
	outer := linkedList(coords, 0, outerLen, true)
	var triangles []int
	if outer == nil || outer.next == outer.prev {
		return triangles
	}
	if len(holes) > 0 {
		outer = eliminateHoles(coords, holes, outer)
	}

	var minX, minY, invSize float64
	if len(coords) > hashThreshold {
		minX, minY = coords[0], coords[1]
		maxX, maxY := minX, minY
		for i := 2; i < outerLen; i += 2 {
			x, y := coords[i], coords[i+1]
			minX = math.Min(minX, x)
			minY = math.Min(minY, y)
			maxX = math.Max(maxX, x)
			maxY = math.Max(maxY, y)
		}
		invSize = math.Max(maxX-minX, maxY-minY)
		if invSize != 0 {
			invSize = 32767 / invSize
		}
	}

	earcutLinked(outer, &triangles, minX, minY, invSize, 0)
	return triangles
}

// linkedList builds a ring from coords[start:end] in the requested winding.
func linkedList(coords []float64, start, end int, clockwise bool) *node {
	var last *node
	if clockwise == (ringArea(coords, start, end) > 0) {
		for i := start; i < end; i += 2 {
			last = insertNode(i/2, coords[i], coords[i+1], last)
		}
	} else {
		for i := end - 2; i >= start; i -= 2 {
			last = insertNode(i/2, coords[i], coords[i+1], last)
		}
	}
	if last != nil && equals(last, last.next) {
		removeNode(last)
		last = last.next
	}
	return last
}

// filterPoints removes duplicate and collinear points between start and end.
func filterPoints(start, end *node) *node {
	if start == nil {
		return start
	}
	if end == nil {
		end = start
	}
	p := start
	for {
		again := false
		if !p.steiner && (equals(p, p.next) || area(p.prev, p, p.next) == 0) {
			removeNode(p)
			p = p.prev
			end = p
			if p == p.next {
				break
			}
			again = true
		} else {
			p = p.next
		}
		if !again && p == end {
			break
		}
	}
	return end
}

func earcutLinked(ear *node, triangles *[]int, minX, minY, invSize float64, pass int) {
	if ear == nil {
		return
	}
	if pass == 0 && invSize != 0 {
		indexCurve(ear, minX, minY, invSize)
	}

	stop := ear
	for ear.prev != ear.next {
		prev, next := ear.prev, ear.next

		var isEarNode bool
		if invSize != 0 {
			isEarNode = isEarHashed(ear, minX, minY, invSize)
		} else {
			isEarNode = isEar(ear)
		}
		if isEarNode {
			*triangles = append(*triangles, prev.i, ear.i, next.i)
			removeNode(ear)
			ear = next.next
			stop = next.next
			continue
		}

		ear = next
		if ear == stop {
			switch pass {
			case 0:
				earcutLinked(filterPoints(ear, nil), triangles, minX, minY, invSize, 1)
			case 1:
				ear = cureLocalIntersections(filterPoints(ear, nil), triangles)
				earcutLinked(ear, triangles, minX, minY, invSize, 2)
			case 2:
				splitEarcut(ear, triangles, minX, minY, invSize)
			}
			break
		}
	}
}

// isEar reports whether ear is a valid ear by scanning every other vertex.
func isEar(ear *node) bool {
	a, b, c := ear.prev, ear, ear.next
	if area(a, b, c) >= 0 {
		return false
	}
	x0, y0, x1, y1 := triangleBox(a, b, c)
	for p := c.next; p != a; p = p.next {
		if p.x >= x0 && p.x <= x1 && p.y >= y0 && p.y <= y1 &&
			pointInTriangle(a.x, a.y, b.x, b.y, c.x, c.y, p.x, p.y) &&
			area(p.prev, p, p.next) >= 0 {
			return false
		}
	}
	return true
}

// isEarHashed is isEar restricted to vertices whose z-order falls inside the
// ear's bounding box.
func isEarHashed(ear *node, minX, minY, invSize float64) bool {
	a, b, c := ear.prev, ear, ear.next
	if area(a, b, c) >= 0 {
		return false
	}
	x0, y0, x1, y1 := triangleBox(a, b, c)
	minZ := zOrder(x0, y0, minX, minY, invSize)
	maxZ := zOrder(x1, y1, minX, minY, invSize)

	blocks := func(p *node) bool {
		return p.x >= x0 && p.x <= x1 && p.y >= y0 && p.y <= y1 && p != a && p != c &&
			pointInTriangle(a.x, a.y, b.x, b.y, c.x, c.y, p.x, p.y) &&
			area(p.prev, p, p.next) >= 0
	}

	p, n := ear.prevZ, ear.nextZ
	for p != nil && p.z >= minZ && n != nil && n.z <= maxZ {
		if blocks(p) {
			return false
		}
		p = p.prevZ
		if blocks(n) {
			return false
		}
		n = n.nextZ
	}
	for p != nil && p.z >= minZ {
		if blocks(p) {
			return false
		}
		p = p.prevZ
	}
	for n != nil && n.z <= maxZ {
		if blocks(n) {
			return false
		}
		n = n.nextZ
	}
	return true
}

func triangleBox(a, b, c *node) (x0, y0, x1, y1 float64) {
	x0 = math.Min(a.x, math.Min(b.x, c.x))
	y0 = math.Min(a.y, math.Min(b.y, c.y))
	x1 = math.Max(a.x, math.Max(b.x, c.x))
	y1 = math.Max(a.y, math.Max(b.y, c.y))
	return x0, y0, x1, y1
}

// cureLocalIntersections clips triangles around small self-intersections.
func cureLocalIntersections(start *node, triangles *[]int) *node {
	p := start
	for {
		a, b := p.prev, p.next.next
		if !equals(a, b) && intersects(a, p, p.next, b) && locallyInside(a, b) && locallyInside(b, a) {
			*triangles = append(*triangles, a.i, p.i, b.i)
			removeNode(p)
			removeNode(p.next)
			p = b
			start = b
		}
		p = p.next
		if p == start {
			break
		}
	}
	return filterPoints(p, nil)
}

// splitEarcut splits the ring along a valid diagonal and clips each half.
func splitEarcut(start *node, triangles *[]int, minX, minY, invSize float64) {
	a := start
	for {
		for b := a.next.next; b != a.prev; b = b.next {
			if a.i != b.i && isValidDiagonal(a, b) {
				c := splitPolygon(a, b)
				a = filterPoints(a, a.next)
				c = filterPoints(c, c.next)
				earcutLinked(a, triangles, minX, minY, invSize, 0)
				earcutLinked(c, triangles, minX, minY, invSize, 0)
				return
			}
		}
		a = a.next
		if a == start {
			return
		}
	}
}

// eliminateHoles bridges every hole into the outer ring, leftmost first.
func eliminateHoles(coords []float64, holes []int, outer *node) *node {
	queue := make([]*node, 0, len(holes))
	for i, h := range holes {
		start := h * 2
		end := len(coords)
		if i < len(holes)-1 {
			end = holes[i+1] * 2
		}
		list := linkedList(coords, start, end, false)
		if list == nil {
			continue
		}
		if list == list.next {
			list.steiner = true
		}
		queue = append(queue, leftmost(list))
	}
	sortByX(queue)
	for _, h := range queue {
		outer = eliminateHole(h, outer)
	}
	return outer
}

func sortByX(nodes []*node) {
	for i := 1; i < len(nodes); i++ {
		for j := i; j > 0 && nodes[j].x < nodes[j-1].x; j-- {
			nodes[j], nodes[j-1] = nodes[j-1], nodes[j]
		}
	}
}

func eliminateHole(hole, outer *node) *node {
	bridge := findHoleBridge(hole, outer)
	if bridge == nil {
		return outer
	}
	bridgeReverse := splitPolygon(bridge, hole)
	filterPoints(bridgeReverse, bridgeReverse.next)
	return filterPoints(bridge, bridge.next)
}

// findHoleBridge finds an outer vertex visible from the hole's leftmost point
// (David Eberly's algorithm).
func findHoleBridge(hole, outer *node) *node {
	p := outer
	hx, hy := hole.x, hole.y
	qx := math.Inf(-1)
	var m *node

	for {
		if hy <= p.y && hy >= p.next.y && p.next.y != p.y {
			x := p.x + (hy-p.y)*(p.next.x-p.x)/(p.next.y-p.y)
			if x <= hx && x > qx {
				qx = x
				m = p
				if p.next.x <= p.x {
					m = p.next
				}
				if x == hx {
					return m
				}
			}
		}
		p = p.next
		if p == outer {
			break
		}
	}
	if m == nil {
		return nil
	}

	stop := m
	mx, my := m.x, m.y
	tanMin := math.Inf(1)
	p = m
	for {
		ax, cx := qx, hx
		if hy < my {
			ax, cx = hx, qx
		}
		if hx >= p.x && p.x >= mx && hx != p.x &&
			pointInTriangle(ax, hy, mx, my, cx, hy, p.x, p.y) {
			tan := math.Abs(hy-p.y) / (hx - p.x)
			if locallyInside(p, hole) &&
				(tan < tanMin || (tan == tanMin && (p.x > m.x || (p.x == m.x && sectorContainsSector(m, p))))) {
				m = p
				tanMin = tan
			}
		}
		p = p.next
		if p == stop {
			break
		}
	}
	return m
}

func sectorContainsSector(m, p *node) bool {
	return area(m.prev, m, p.prev) < 0 && area(p.next, m, m.next) < 0
}

// indexCurve assigns z-order values and sorts the ring's z links.
func indexCurve(start *node, minX, minY, invSize float64) {
	p := start
	for {
		if p.z == 0 {
			p.z = zOrder(p.x, p.y, minX, minY, invSize)
		}
		p.prevZ = p.prev
		p.nextZ = p.next
		p = p.next
		if p == start {
			break
		}
	}
	p.prevZ.nextZ = nil
	p.prevZ = nil
	sortLinked(p)
}

// sortLinked is Simon Tatham's linked-list merge sort on the z links.
func sortLinked(list *node) *node {
	inSize := 1
	for {
		p := list
		list = nil
		var tail *node
		merges := 0
		for p != nil {
			merges++
			q := p
			pSize := 0
			for i := 0; i < inSize; i++ {
				pSize++
				q = q.nextZ
				if q == nil {
					break
				}
			}
			qSize := inSize
			for pSize > 0 || (qSize > 0 && q != nil) {
				var e *node
				if pSize != 0 && (qSize == 0 || q == nil || p.z <= q.z) {
					e = p
					p = p.nextZ
					pSize--
				} else {
					e = q
					q = q.nextZ
					qSize--
				}
				if tail != nil {
					tail.nextZ = e
				} else {
					list = e
				}
				e.prevZ = tail
				tail = e
			}
			p = q
		}
		tail.nextZ = nil
		inSize *= 2
		if merges <= 1 {
			return list
		}
	}
}

// zOrder interleaves the bits of the scaled coordinates.
func zOrder(fx, fy, minX, minY, invSize float64) int32 {
	x := int32((fx - minX) * invSize)
	y := int32((fy - minY) * invSize)

	x = (x | (x << 8)) & 0x00FF00FF
	x = (x | (x << 4)) & 0x0F0F0F0F
	x = (x | (x << 2)) & 0x33333333
	x = (x | (x << 1)) & 0x55555555

	y = (y | (y << 8)) & 0x00FF00FF
	y = (y | (y << 4)) & 0x0F0F0F0F
	y = (y | (y << 2)) & 0x33333333
	y = (y | (y << 1)) & 0x55555555

	return x | (y << 1)
}

func leftmost(start *node) *node {
	p, left := start, start
	for {
		if p.x < left.x || (p.x == left.x && p.y < left.y) {
			left = p
		}
		p = p.next
		if p == start {
			return left
		}
	}
}

func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py) >= (ax-px)*(cy-py) &&
		(ax-px)*(by-py) >= (bx-px)*(ay-py) &&
		(bx-px)*(cy-py) >= (cx-px)*(by-py)
}

func isValidDiagonal(a, b *node) bool {
	if a.next.i == b.i || a.prev.i == b.i || intersectsPolygon(a, b) {
		return false
	}
	if locallyInside(a, b) && locallyInside(b, a) && middleInside(a, b) &&
		(area(a.prev, a, b.prev) != 0 || area(a, b.prev, b) != 0) {
		return true
	}
	return equals(a, b) && area(a.prev, a, a.next) > 0 && area(b.prev, b, b.next) > 0
}

// area is twice the signed triangle area in the ring's orientation.
func area(p, q, r *node) float64 {
	return (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)
}

func equals(p, q *node) bool {
	return p.x == q.x && p.y == q.y
}

func intersects(p1, q1, p2, q2 *node) bool {
	o1 := sign(area(p1, q1, p2))
	o2 := sign(area(p1, q1, q2))
	o3 := sign(area(p2, q2, p1))
	o4 := sign(area(p2, q2, q1))
	if o1 != o2 && o3 != o4 {
		return true
	}
	switch {
	case o1 == 0 && onSegment(p1, p2, q1):
		return true
	case o2 == 0 && onSegment(p1, q2, q1):
		return true
	case o3 == 0 && onSegment(p2, p1, q2):
		return true
	case o4 == 0 && onSegment(p2, q1, q2):
		return true
	}
	return false
}

func onSegment(p, q, r *node) bool {
	return q.x <= math.Max(p.x, r.x) && q.x >= math.Min(p.x, r.x) &&
		q.y <= math.Max(p.y, r.y) && q.y >= math.Min(p.y, r.y)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func intersectsPolygon(a, b *node) bool {
	p := a
	for {
		if p.i != a.i && p.next.i != a.i && p.i != b.i && p.next.i != b.i && intersects(p, p.next, a, b) {
			return true
		}
		p = p.next
		if p == a {
			return false
		}
	}
}

func locallyInside(a, b *node) bool {
	if area(a.prev, a, a.next) < 0 {
		return area(a, b, a.next) >= 0 && area(a, a.prev, b) >= 0
	}
	return area(a, b, a.prev) < 0 || area(a, a.next, b) < 0
}

func middleInside(a, b *node) bool {
	p := a
	inside := false
	px, py := (a.x+b.x)/2, (a.y+b.y)/2
	for {
		if (p.y > py) != (p.next.y > py) && p.next.y != p.y &&
			px < (p.next.x-p.x)*(py-p.y)/(p.next.y-p.y)+p.x {
			inside = !inside
		}
		p = p.next
		if p == a {
			return inside
		}
	}
}

// splitPolygon links a and b with a bridge, duplicating both vertices so
// the ring splits in two. It returns the duplicate of b.
func splitPolygon(a, b *node) *node {
	a2 := &node{i: a.i, x: a.x, y: a.y}
	b2 := &node{i: b.i, x: b.x, y: b.y}
	an, bp := a.next, b.prev

	a.next = b
	b.prev = a

	a2.next = an
	an.prev = a2

	b2.next = a2
	a2.prev = b2

	bp.next = b2
	b2.prev = bp

	return b2
}

func insertNode(i int, x, y float64, last *node) *node {
	p := &node{i: i, x: x, y: y}
	if last == nil {
		p.prev = p
		p.next = p
	} else {
		p.next = last.next
		p.prev = last
		last.next.prev = p
		last.next = p
	}
	return p
}

func removeNode(p *node) {
	p.next.prev = p.prev
	p.prev.next = p.next
	if p.prevZ != nil {
		p.prevZ.nextZ = p.nextZ
	}
	if p.nextZ != nil {
		p.nextZ.prevZ = p.prevZ
	}
}

// ringArea is the earcut orientation measure; positive for
// counter-clockwise rings in a y-up frame.
func ringArea(coords []float64, start, end int) float64 {
	var sum float64
	j := end - 2
	for i := start; i < end; i += 2 {
		sum += (coords[j] - coords[i]) * (coords[i+1] + coords[j+1])
		j = i
	}
	return sum
}
