package bench

import "time"

// Check status values.
const (
	CheckPassed = "passed"
	CheckFailed = "failed"
)

// RoundResult reports one timed trial.
type RoundResult struct {
	RunID         string        `json:"run_id" yaml:"run_id" table:"wide"`
	Round         int           `json:"round" yaml:"round"`
	Set           string        `json:"set" yaml:"set"`
	Size          int           `json:"n" yaml:"n"`
	Workers       int           `json:"p" yaml:"p"`
	Zipf          float64       `json:"z" yaml:"z"`
	UpdatePercent int           `json:"update_pct" yaml:"update_pct"`
	Ops           uint64        `json:"ops" yaml:"ops"`
	Finds         uint64        `json:"finds" yaml:"finds" table:"wide"`
	FindHits      uint64        `json:"find_hits" yaml:"find_hits" table:"wide"`
	Inserts       uint64        `json:"inserts" yaml:"inserts" table:"wide"`
	Removes       uint64        `json:"removes" yaml:"removes" table:"wide"`
	Retries       uint64        `json:"retries" yaml:"retries" table:"wide"`
	Duration      time.Duration `json:"duration" yaml:"duration"`
	Throughput    float64       `json:"throughput" yaml:"throughput"`
	HitRatio      float64       `json:"hit_ratio" yaml:"hit_ratio"`
	FinalKeys     int           `json:"final_keys" yaml:"final_keys"`
	Check         string        `json:"check" yaml:"check"`
}

// tally accumulates one worker's counts. Workers keep a local tally and
// publish it once at the end of the trial.
type tally struct {
	total    uint64
	finds    uint64
	findHits uint64
	inserts  uint64 // successful
	removes  uint64 // successful

	insertMisses uint64
	removeMisses uint64
}

func (t *tally) add(o *tally) {
	t.total += o.total
	t.finds += o.finds
	t.findHits += o.findHits
	t.inserts += o.inserts
	t.removes += o.removes
	t.insertMisses += o.insertMisses
	t.removeMisses += o.removeMisses
}
