package core

import "time"

// TextChunk is a contiguous block of non-blank source lines, bounded by blank
// lines in the original document. Chunks are immutable once produced and are
// consumed exactly once by the pipeline.
type TextChunk string

// QAPair is one generated question/answer tuple.
type QAPair struct {
	Question string
	Answer   string
}

// Column names fixed by the destination table schema.
const (
	ColumnQuestion = "Question"
	ColumnAnswer   = "Answer"
)

// UploadRecord is the external representation of a QAPair: a mapping keyed by
// the destination table's column names. Records are created once per pair and
// never updated or deleted by the pipeline.
type UploadRecord map[string]string

// UploadRecord converts the pair into the destination table's record shape.
func (p QAPair) UploadRecord() UploadRecord {
	return UploadRecord{
		ColumnQuestion: p.Question,
		ColumnAnswer:   p.Answer,
	}
}

// ID is a unique identifier for stored pair records.
// It is generated from database sequences.
type ID uint64

// PairRecord is a QAPair persisted to a local table, with storage metadata.
type PairRecord struct {
	Id         ID
	Question   string
	Answer     string
	InsertedAt time.Time
}

// Pair returns the record's question/answer tuple.
func (r *PairRecord) Pair() QAPair {
	return QAPair{Question: r.Question, Answer: r.Answer}
}
