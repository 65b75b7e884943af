// Package blend removes the seam where an appendage tube meets a host
// tube: it cuts the host faces the appendage root covers and splices
// bridge triangles between the appendage's root ring and the hole's rim.
package blend

import (
	"math"
	"sort"

	"creature-forge/internal/mathutil"
	"creature-forge/internal/meshbuf"
)

// Options tunes a stitch.
type Options struct {
	// SpanFraction is the share of the host's angular segments the cut
	// covers, centered on the appendage. Zero means the 0.25 default.
	SpanFraction float64
	// Clearance sinks the appendage root ring below the host surface so
	// the limb emerges from the body instead of floating on it.
	Clearance float64
}

// Result carries the three buffers a stitch produces. Host and Appendage
// are always fresh copies; the inputs are never modified. When Stitched
// is false the copies are unchanged and Bridge is nil, and the caller
// should merge the parts unstitched.
type Result struct {
	Host      *meshbuf.Buffer
	Appendage *meshbuf.Buffer
	Bridge    *meshbuf.Buffer
	Stitched  bool
}

// region is the transient correspondence computed for one stitch: which
// host band got cut, which angular segments, and which appendage root
// vertex lines up with each rim position.
type region struct {
	hostRing     int
	hostSegments []int
	appVertices  []int
}

// Stitch cuts a hole in host where app's root ring lands and bridges the
// two rims. Both buffers need ring metadata with equal side counts; when
// they differ the stitch degrades to an unstitched pass-through rather
// than failing the whole creature.
func Stitch(host, app *meshbuf.Buffer, opts Options) (Result, error) {
	res := Result{Host: host.Clone(), Appendage: app.Clone()}

	if host.Ring == nil || app.Ring == nil ||
		host.Ring.Sides != app.Ring.Sides ||
		len(host.Ring.Rings) < 2 || len(app.Ring.Rings) < 1 {
		return res, nil
	}
	if err := host.Validate(); err != nil {
		return res, err
	}
	if err := app.Validate(); err != nil {
		return res, err
	}

	sides := host.Ring.Sides
	hostRings := res.Host.Ring.Rings
	appRoot := res.Appendage.Ring.Rings[0]

	// 1. Nearest band by projecting ring centers onto the host axis.
	band := nearestBand(hostRings, appRoot.Center)
	lower, upper := hostRings[band], hostRings[band+1]

	// 2. Band surface frame from the stored ring orientation.
	tangent := lower.Tangent
	normal := lower.Axis1
	binormal := lower.Axis2
	bandCenter := mathutil.VecLerp(lower.Center, upper.Center, 0.5)
	bandRadius := (lower.Radius + upper.Radius) / 2

	// 3. Sink the appendage root ring to clearance depth below the
	// band surface along its own outward direction.
	outward := mathutil.ProjectOnPlane(appRoot.Center.Sub(bandCenter), tangent).NormalizeOr(normal)
	depth := appRoot.Center.Sub(bandCenter).Dot(outward) - (bandRadius - opts.Clearance)
	shift := outward.Scale(-depth)
	for j := 0; j < sides; j++ {
		vi := appRoot.Start + j
		res.Appendage.SetPosition(vi, res.Appendage.Position(vi).Add(shift))
	}
	appRoot.Center = appRoot.Center.Add(shift)
	res.Appendage.Ring.Rings[0] = appRoot

	// 4. Angular position of the appendage on the band, then the
	// contiguous segment span to cut.
	theta := math.Atan2(outward.Dot(binormal), outward.Dot(normal))
	if theta < 0 {
		theta += 2 * math.Pi
	}
	centerSeg := int(math.Round(theta/(2*math.Pi)*float64(sides))) % sides

	frac := opts.SpanFraction
	if frac <= 0 {
		frac = 0.25
	}
	span := int(math.Round(frac * float64(sides)))
	if span < 3 {
		span = 3
	}
	if span > sides {
		span = sides
	}
	reg := region{hostRing: band, hostSegments: make([]int, span)}
	for i := range reg.hostSegments {
		reg.hostSegments[i] = ((centerSeg-span/2+i)%sides + sides) % sides
	}

	// 5. Anchor the vertex correspondence so the bridge does not twist.
	reg.appVertices = matchAppendageVertices(res.Host, res.Appendage, lower, appRoot, reg.hostSegments, sides, tangent, outward)

	// 6. Drop the band triangles inside the span.
	res.Host.Indices = filterIndices(res.Host.Indices, removalSet(lower.Start, upper.Start, reg.hostSegments, sides))

	// 7. Bridge the hole rim to the appendage root ring.
	res.Bridge = buildBridge(res.Host, res.Appendage, lower, upper, appRoot, reg, sides)

	// 8. Normals on everything the cut touched.
	meshbuf.RecomputeNormals(res.Host)
	meshbuf.RecomputeNormals(res.Appendage)
	meshbuf.RecomputeNormals(res.Bridge)
	res.Stitched = true
	return res, nil
}

func nearestBand(rings []meshbuf.RingInfo, target mathutil.Vec3) int {
	start := rings[0].Center
	axis := rings[len(rings)-1].Center.Sub(start).NormalizeOr(rings[0].Tangent)
	proj := target.Sub(start).Dot(axis)

	best, bestDist := 0, math.Inf(1)
	for i := 0; i+1 < len(rings); i++ {
		mid := mathutil.VecLerp(rings[i].Center, rings[i+1].Center, 0.5)
		d := math.Abs(mid.Sub(start).Dot(axis) - proj)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// matchAppendageVertices maps each rim position of the span to an
// appendage root vertex. Angles are measured in the plane perpendicular
// to the appendage's outward direction so both rims share one reference,
// the best-matching vertex anchors the walk, and the walk direction
// follows whichever neighbour continues the rim's angular order.
func matchAppendageVertices(host, app *meshbuf.Buffer, lower, appRoot meshbuf.RingInfo, segments []int, sides int, tangent, outward mathutil.Vec3) []int {
	u := mathutil.ProjectOnPlane(tangent, outward).NormalizeOr(tangent)
	w := outward.Cross(u).Normalize()
	holeCenter := lower.Center.Add(outward.Scale(lower.Radius))

	angleOf := func(d mathutil.Vec3) float64 {
		p := mathutil.ProjectOnPlane(d, outward)
		return math.Atan2(p.Dot(w), p.Dot(u))
	}

	hostAngle := func(pos int) float64 {
		seg := segments[0] + pos
		vi := lower.Start + ((seg%sides)+sides)%sides
		return angleOf(host.Position(vi).Sub(holeCenter))
	}
	appAngle := func(j int) float64 {
		vi := appRoot.Start + ((j%sides)+sides)%sides
		return angleOf(app.Position(vi).Sub(appRoot.Center))
	}

	anchor, best := 0, math.Inf(1)
	for j := 0; j < sides; j++ {
		d := math.Abs(angleDiff(appAngle(j), hostAngle(0)))
		if d < best {
			anchor, best = j, d
		}
	}

	dir := 1
	fwd := math.Abs(angleDiff(appAngle(anchor+1), hostAngle(1)))
	rev := math.Abs(angleDiff(appAngle(anchor-1), hostAngle(1)))
	if rev < fwd {
		dir = -1
	}

	out := make([]int, len(segments)+1)
	for i := range out {
		out[i] = ((anchor+dir*i)%sides + sides) % sides
	}
	return out
}

func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d - math.Pi
}

type triKey [3]uint32

func sortedKey(a, b, c uint32) triKey {
	k := []uint32{a, b, c}
	sort.Slice(k, func(i, j int) bool { return k[i] < k[j] })
	return triKey{k[0], k[1], k[2]}
}

// removalSet enumerates the quad-strip triangles the span covers between
// the two band rings, keyed by sorted vertex indices.
func removalSet(lowerStart, upperStart int, segments []int, sides int) map[triKey]bool {
	set := make(map[triKey]bool, len(segments)*2)
	for _, s := range segments {
		sn := (s + 1) % sides
		a := uint32(lowerStart + s)
		b := uint32(lowerStart + sn)
		c := uint32(upperStart + s)
		d := uint32(upperStart + sn)
		set[sortedKey(a, c, b)] = true
		set[sortedKey(b, c, d)] = true
	}
	return set
}

func filterIndices(indices []uint32, remove map[triKey]bool) []uint32 {
	out := make([]uint32, 0, len(indices))
	for i := 0; i+2 < len(indices); i += 3 {
		if remove[sortedKey(indices[i], indices[i+1], indices[i+2])] {
			continue
		}
		out = append(out, indices[i], indices[i+1], indices[i+2])
	}
	return out
}

// buildBridge emits four triangles per span segment: a lower quad from
// the host's lower rim up to the appendage ring and an upper quad from
// the appendage ring to the host's upper rim. Every bridge vertex copies
// an existing vertex's attributes, so skin weights carry over untouched.
func buildBridge(host, app *meshbuf.Buffer, lower, upper, appRoot meshbuf.RingInfo, reg region, sides int) *meshbuf.Buffer {
	b := &meshbuf.Buffer{}
	hostCopies := make(map[int]uint32)
	appCopies := make(map[int]uint32)

	fromHost := func(i int) uint32 {
		if idx, ok := hostCopies[i]; ok {
			return idx
		}
		idx := uint32(b.CopyVertex(host, i))
		hostCopies[i] = idx
		return idx
	}
	fromApp := func(i int) uint32 {
		if idx, ok := appCopies[i]; ok {
			return idx
		}
		idx := uint32(b.CopyVertex(app, i))
		appCopies[i] = idx
		return idx
	}

	for i, seg := range reg.hostSegments {
		segN := (seg + 1) % sides
		l0 := fromHost(lower.Start + seg)
		l1 := fromHost(lower.Start + segN)
		u0 := fromHost(upper.Start + seg)
		u1 := fromHost(upper.Start + segN)
		a0 := fromApp(appRoot.Start + reg.appVertices[i])
		a1 := fromApp(appRoot.Start + reg.appVertices[i+1])

		b.AddTriangle(l0, a0, l1)
		b.AddTriangle(l1, a0, a1)
		b.AddTriangle(a0, u0, a1)
		b.AddTriangle(a1, u0, u1)
	}
	return b
}
