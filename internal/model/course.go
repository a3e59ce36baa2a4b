package model

// Course names form a small fixed catalog of training tracks.
const (
	CourseBandai  = "磐梯"
	CourseAdatara = "安達太良"
	CourseAzuma   = "吾妻"
	CourseIide    = "飯豊"
)

// Catalog returns the fixed course catalog in display order
func Catalog() []string {
	return []string{CourseBandai, CourseAdatara, CourseAzuma, CourseIide}
}

// ValidCourse reports whether name is one of the catalog courses
func ValidCourse(name string) bool {
	for _, c := range Catalog() {
		if c == name {
			return true
		}
	}
	return false
}
