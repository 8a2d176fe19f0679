package scene

// Kind identifies an entity type.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindLine
	KindXLine
	KindRay
	KindPoint
	KindCircle
	KindArc
	KindEllipse
	KindLWPolyline
	KindPolyline
	KindSpline
	KindHelix
	KindMLine
	KindText
	KindAttrib
	KindAttDef
	KindMText
	KindTolerance
	KindTable
	KindHatch
	KindSolid
	KindTrace
	KindFace3D
	KindWipeout
	KindImage
	KindUnderlay
	KindOLE2Frame
	KindMesh
	KindSolid3D
	KindPolySolid
	KindInsert
	KindDimension
	KindLeader
	KindMLeader
	KindViewport

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:    "UNKNOWN",
	KindLine:       "LINE",
	KindXLine:      "XLINE",
	KindRay:        "RAY",
	KindPoint:      "POINT",
	KindCircle:     "CIRCLE",
	KindArc:        "ARC",
	KindEllipse:    "ELLIPSE",
	KindLWPolyline: "LWPOLYLINE",
	KindPolyline:   "POLYLINE",
	KindSpline:     "SPLINE",
	KindHelix:      "HELIX",
	KindMLine:      "MLINE",
	KindText:       "TEXT",
	KindAttrib:     "ATTRIB",
	KindAttDef:     "ATTDEF",
	KindMText:      "MTEXT",
	KindTolerance:  "TOLERANCE",
	KindTable:      "ACAD_TABLE",
	KindHatch:      "HATCH",
	KindSolid:      "SOLID",
	KindTrace:      "TRACE",
	KindFace3D:     "3DFACE",
	KindWipeout:    "WIPEOUT",
	KindImage:      "IMAGE",
	KindUnderlay:   "UNDERLAY",
	KindOLE2Frame:  "OLE2FRAME",
	KindMesh:       "MESH",
	KindSolid3D:    "3DSOLID",
	KindPolySolid:  "POLYSOLID",
	KindInsert:     "INSERT",
	KindDimension:  "DIMENSION",
	KindLeader:     "LEADER",
	KindMLeader:    "MULTILEADER",
	KindViewport:   "VIEWPORT",
}

// String returns the DXF entity name.
func (k Kind) String() string {
	if k >= kindCount {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}
