package domain

import (
	"path/filepath"
	"strings"
)

// OutputKind is the bundling strategy selected from a job id.
type OutputKind uint8

const (
	// OutputUnsupported marks a job id whose extension has no strategy.
	OutputUnsupported OutputKind = iota
	// OutputWsf bundles every script of the job into a single-job package.
	OutputWsf
	// OutputJScript concatenates JScript sources into a flat file.
	OutputJScript
	// OutputVBScript concatenates VBScript sources into a flat file.
	OutputVBScript
)

// String returns a short label for listings.
func (k OutputKind) String() string {
	switch k {
	case OutputWsf:
		return "wsf"
	case OutputJScript:
		return "js"
	case OutputVBScript:
		return "vbs"
	default:
		return "unsupported"
	}
}

// Language returns the only language a flat bundle may hold.
func (k OutputKind) Language() Language {
	switch k {
	case OutputJScript:
		return JScript
	case OutputVBScript:
		return VBScript
	default:
		return LanguageUnknown
	}
}

// OutputKindOf derives the strategy from the extension of a job id.
func OutputKindOf(jobID string) OutputKind {
	switch strings.ToLower(filepath.Ext(jobID)) {
	case ".wsf":
		return OutputWsf
	case ".js":
		return OutputJScript
	case ".vbs":
		return OutputVBScript
	default:
		return OutputUnsupported
	}
}

// Job is a <job> element. Its id doubles as the output file name.
type Job struct {
	ID      string
	Scripts []ScriptRef
	// Markup holds <object>, <reference>, <resource> and <runtime> elements verbatim.
	Markup []string
}

// Kind returns the bundling strategy for the job.
func (j *Job) Kind() OutputKind {
	return OutputKindOf(j.ID)
}

// Sources returns the src attribute of every non-inline script, in order.
func (j *Job) Sources() []string {
	srcs := make([]string, 0, len(j.Scripts))
	for _, s := range j.Scripts {
		if !s.IsInline() {
			srcs = append(srcs, s.Src)
		}
	}
	return srcs
}

// Package is a parsed .wsf descriptor.
type Package struct {
	// Path is the absolute path of the descriptor.
	Path string
	Jobs []Job
}

// Dir returns the directory holding the descriptor.
func (p *Package) Dir() string {
	return filepath.Dir(p.Path)
}

// Job looks up a job by id.
func (p *Package) Job(id string) (*Job, bool) {
	for i := range p.Jobs {
		if p.Jobs[i].ID == id {
			return &p.Jobs[i], true
		}
	}
	return nil, false
}
