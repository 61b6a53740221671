package context

// ScanLimits bounds one directory walk. The value is fixed for the
// lifetime of a single packet build and never mutated mid-scan.
type ScanLimits struct {
	MaxDepth      int             // entries deeper than this are not visited (root = depth 0)
	MaxFiles      int             // cap on candidates returned
	MaxFileBytes  int             // per-file size ceiling for candidates
	ExcludedNames map[string]bool // exact basename matches pruned from the walk
}

// CandidateFile is a filesystem entry that passed all scan filters.
// It exists only for one packet build and is consumed read-only.
type CandidateFile struct {
	Path    string // absolute path
	RelPath string // path relative to the scan root
	Size    int64
}

// ScanResult is the ordered candidate list plus the total number of
// files observed, including those excluded only by the MaxFiles cap or
// the per-file size ceiling. The total feeds the "N of M shown" report.
type ScanResult struct {
	Candidates []CandidateFile
	TotalSeen  int
}
