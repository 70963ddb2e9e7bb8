package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for types that cross the archive boundary. Written by
// hand rather than generated: the archive only persists two small types
// and the field order below is the storage format.
var (
	IDMUS          = idMUS{}
	RuleMUS        = ruleMUS{}
	TrainingRunMUS = trainingRunMUS{}

	stringSliceMUS = ord.NewSliceSer[string](ord.String)
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type ruleMUS struct{}

func (ruleMUS) Marshal(rule Rule, bs []byte) (n int) {
	n = ord.String.Marshal(rule.Id, bs)
	n += stringSliceMUS.Marshal(rule.Premise, bs[n:])
	n += stringSliceMUS.Marshal(rule.Conclusion, bs[n:])
	n += raw.Float64.Marshal(rule.Confidence, bs[n:])
	n += raw.Float64.Marshal(rule.Weight, bs[n:])
	n += ord.String.Marshal(rule.Type, bs[n:])
	return n
}

func (ruleMUS) Unmarshal(bs []byte) (rule Rule, n int, err error) {
	var n1 int
	if rule.Id, n, err = ord.String.Unmarshal(bs); err != nil {
		return rule, n, err
	}
	if rule.Premise, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return rule, n + n1, err
	}
	n += n1
	if rule.Conclusion, n1, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return rule, n + n1, err
	}
	n += n1
	if rule.Confidence, n1, err = raw.Float64.Unmarshal(bs[n:]); err != nil {
		return rule, n + n1, err
	}
	n += n1
	if rule.Weight, n1, err = raw.Float64.Unmarshal(bs[n:]); err != nil {
		return rule, n + n1, err
	}
	n += n1
	rule.Type, n1, err = ord.String.Unmarshal(bs[n:])
	return rule, n + n1, err
}

func (ruleMUS) Size(rule Rule) (size int) {
	size = ord.String.Size(rule.Id)
	size += stringSliceMUS.Size(rule.Premise)
	size += stringSliceMUS.Size(rule.Conclusion)
	size += raw.Float64.Size(rule.Confidence)
	size += raw.Float64.Size(rule.Weight)
	size += ord.String.Size(rule.Type)
	return size
}

func (ruleMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = ord.String.Skip(bs); err != nil {
		return n, err
	}
	if n1, err = stringSliceMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = stringSliceMUS.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = raw.Float64.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = raw.Float64.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	n1, err = ord.String.Skip(bs[n:])
	return n + n1, err
}

type trainingRunMUS struct{}

func (trainingRunMUS) Marshal(run TrainingRun, bs []byte) (n int) {
	n = ord.String.Marshal(run.Id, bs)
	n += ord.String.Marshal(run.Task, bs[n:])
	n += varint.Int64.Marshal(run.CreatedAt.UnixMicro(), bs[n:])
	n += varint.Int.Marshal(run.ConceptCount, bs[n:])
	n += varint.Int.Marshal(run.ExampleCount, bs[n:])
	n += varint.Int.Marshal(run.RuleCount, bs[n:])
	n += varint.Int.Marshal(run.Dimension, bs[n:])
	n += ord.Bool.Marshal(run.EncoderAvailable, bs[n:])
	n += ord.String.Marshal(run.EncoderModel, bs[n:])
	n += IDMUS.Marshal(run.InputsId, bs[n:])
	return n
}

func (trainingRunMUS) Unmarshal(bs []byte) (run TrainingRun, n int, err error) {
	var n1 int
	if run.Id, n, err = ord.String.Unmarshal(bs); err != nil {
		return run, n, err
	}
	if run.Task, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return run, n + n1, err
	}
	n += n1
	var createdAt int64
	if createdAt, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return run, n + n1, err
	}
	n += n1
	run.CreatedAt = time.UnixMicro(createdAt).UTC()
	if run.ConceptCount, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return run, n + n1, err
	}
	n += n1
	if run.ExampleCount, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return run, n + n1, err
	}
	n += n1
	if run.RuleCount, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return run, n + n1, err
	}
	n += n1
	if run.Dimension, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return run, n + n1, err
	}
	n += n1
	if run.EncoderAvailable, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return run, n + n1, err
	}
	n += n1
	if run.EncoderModel, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return run, n + n1, err
	}
	n += n1
	run.InputsId, n1, err = IDMUS.Unmarshal(bs[n:])
	return run, n + n1, err
}

func (trainingRunMUS) Size(run TrainingRun) (size int) {
	size = ord.String.Size(run.Id)
	size += ord.String.Size(run.Task)
	size += varint.Int64.Size(run.CreatedAt.UnixMicro())
	size += varint.Int.Size(run.ConceptCount)
	size += varint.Int.Size(run.ExampleCount)
	size += varint.Int.Size(run.RuleCount)
	size += varint.Int.Size(run.Dimension)
	size += ord.Bool.Size(run.EncoderAvailable)
	size += ord.String.Size(run.EncoderModel)
	size += IDMUS.Size(run.InputsId)
	return size
}

func (trainingRunMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = ord.String.Skip(bs); err != nil {
		return n, err
	}
	for _, skip := range []func([]byte) (int, error){
		ord.String.Skip,
		varint.Int64.Skip,
		varint.Int.Skip,
		varint.Int.Skip,
		varint.Int.Skip,
		varint.Int.Skip,
		ord.Bool.Skip,
		ord.String.Skip,
		IDMUS.Skip,
	} {
		if n1, err = skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	return n, nil
}
