package report

import (
	"math"
	"testing"

	"github.com/depscope/depscope/pkg/deps"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(New("/repo"))

	if s.Total != 0 || s.External != 0 || s.Internal != 0 || s.FilesAnalyzed != 0 {
		t.Errorf("empty summary has non-zero counts: %+v", s)
	}
	if s.ExternalPct != 0 || s.InternalPct != 0 {
		t.Errorf("empty summary has non-zero percentages: %+v", s)
	}
}

func TestSummarize_Percentages(t *testing.T) {
	r := New("/repo")
	r.Add(rec("a.js", "react", deps.KindStatic, 1))
	r.Add(rec("a.js", "./x", deps.KindStatic, 2))
	r.Add(rec("a.js", "./y", deps.KindStatic, 3))
	r.Add(rec("b.js", "react", deps.KindStatic, 1))

	s := Summarize(r)

	if math.Abs(s.ExternalPct-50.0) > 1e-9 {
		t.Errorf("ExternalPct = %v, want 50.0", s.ExternalPct)
	}
	if math.Abs(s.InternalPct-50.0) > 1e-9 {
		t.Errorf("InternalPct = %v, want 50.0", s.InternalPct)
	}
	if s.FilesAnalyzed != 2 {
		t.Errorf("FilesAnalyzed = %d, want 2", s.FilesAnalyzed)
	}
}

func TestPercent_ZeroTotal(t *testing.T) {
	if got := Percent(5, 0); got != 0 {
		t.Errorf("Percent(5, 0) = %v, want 0", got)
	}
}

func TestGroupByKind(t *testing.T) {
	r := New("/repo")
	r.Add(rec("a.js", "react", deps.KindStatic, 1))
	r.Add(rec("a.js", "./lazy", deps.KindDynamic, 2))
	r.Add(rec("b.js", "fs", deps.KindRequire, 1))
	r.Add(rec("b.js", "react", deps.KindStatic, 2))

	got := GroupByKind(r)

	want := map[deps.ImportKind]int{
		deps.KindStatic:  2,
		deps.KindDynamic: 1,
		deps.KindRequire: 1,
	}
	for kind, n := range want {
		if got[kind] != n {
			t.Errorf("GroupByKind()[%s] = %d, want %d", kind, got[kind], n)
		}
	}
	if got[deps.KindTypeOnly] != 0 {
		t.Errorf("GroupByKind()[type_only] = %d, want 0", got[deps.KindTypeOnly])
	}
}

func TestExternalUsage_DistinctFiles(t *testing.T) {
	// left-pad referenced twice from a.js and once each from b.js, c.js:
	// usage counts distinct files, so 3, not 4.
	r := New("/repo")
	r.Add(rec("a.js", "left-pad", deps.KindStatic, 1))
	r.Add(rec("a.js", "left-pad", deps.KindRequire, 9))
	r.Add(rec("b.js", "left-pad", deps.KindStatic, 1))
	r.Add(rec("c.js", "left-pad", deps.KindStatic, 1))
	r.Add(rec("c.js", "react", deps.KindStatic, 2))
	r.Add(rec("c.js", "./local", deps.KindStatic, 3))

	usage := ExternalUsage(r)

	if len(usage) != 2 {
		t.Fatalf("ExternalUsage() has %d rows, want 2: %v", len(usage), usage)
	}
	if usage[0].Package != "left-pad" || usage[0].Files != 3 {
		t.Errorf("usage[0] = %+v, want left-pad with 3 files", usage[0])
	}
	if usage[1].Package != "react" || usage[1].Files != 1 {
		t.Errorf("usage[1] = %+v, want react with 1 file", usage[1])
	}
}

func TestExternalUsage_TieBrokenByName(t *testing.T) {
	r := New("/repo")
	r.Add(rec("a.js", "zlib-wrap", deps.KindStatic, 1))
	r.Add(rec("a.js", "axios", deps.KindStatic, 2))

	usage := ExternalUsage(r)

	if len(usage) != 2 || usage[0].Package != "axios" || usage[1].Package != "zlib-wrap" {
		t.Errorf("ExternalUsage() = %v, want axios before zlib-wrap", usage)
	}
}

func TestRankByFanOut(t *testing.T) {
	r := New("/repo")
	// a.js: fan-out 2 (./x, ./y), b.js: fan-out 1, c.js: external only.
	r.Add(rec("a.js", "./x", deps.KindStatic, 1))
	r.Add(rec("a.js", "./y", deps.KindStatic, 2))
	r.Add(rec("b.js", "./x", deps.KindStatic, 1))
	r.Add(rec("c.js", "react", deps.KindStatic, 1))

	ranked := RankByFanOut(r)

	if len(ranked) != 3 {
		t.Fatalf("RankByFanOut() has %d rows, want 3", len(ranked))
	}
	if ranked[0].File != "a.js" || ranked[0].FanOut != 2 {
		t.Errorf("ranked[0] = %+v, want a.js fan-out 2", ranked[0])
	}
	if ranked[1].File != "b.js" {
		t.Errorf("ranked[1] = %+v, want b.js", ranked[1])
	}
	if ranked[2].File != "c.js" || ranked[2].FanOut != 0 {
		t.Errorf("ranked[2] = %+v, want c.js fan-out 0", ranked[2])
	}
}

func TestRankByFanOut_TiesKeepInputOrder(t *testing.T) {
	r := New("/repo")
	r.Add(rec("z.js", "./a", deps.KindStatic, 1))
	r.Add(rec("m.js", "./a", deps.KindStatic, 1))
	r.Add(rec("b.js", "./a", deps.KindStatic, 1))

	ranked := RankByFanOut(r)

	want := []string{"z.js", "m.js", "b.js"}
	for i, w := range want {
		if ranked[i].File != w {
			t.Errorf("ranked[%d] = %s, want %s (stable input order)", i, ranked[i].File, w)
		}
	}
}

func TestAggregator_DoesNotMutateReport(t *testing.T) {
	r := New("/repo")
	r.Add(rec("a.js", "react", deps.KindStatic, 1))
	r.Add(rec("a.js", "./x", deps.KindStatic, 2))

	Summarize(r)
	GroupByKind(r)
	ExternalUsage(r)
	RankByFanOut(r)

	if r.Total != 2 || len(r.ByFile["a.js"]) != 2 || r.Graph.EdgeCount() != 1 {
		t.Error("aggregation mutated the report")
	}
}
