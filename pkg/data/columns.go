package data

// Column names of the student records table.
const (
	ColGeneralAverage = "PROM_GRAL"
	ColAttendance     = "ASISTENCIA"
	ColDependency     = "DEPENDENCIA"
	ColGender         = "GEN_ALU"
)

// Name markers of the dependency-code and region-code columns. Any column
// whose name contains one of them is categorical.
const (
	MarkerDependencyCode = "COD_DEPE"
	MarkerRegionCode     = "COD_REG_RBD"
)
