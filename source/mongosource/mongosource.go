/*
Package mongosource loads a sampledset.SampledSet from a MongoDB
collection, the way pbanos/botanic/dataset/mongodataset.Dataset reads
dataset.Sample documents from a `samples` collection over a
gopkg.in/mgo.v2 session. The reduction here mirrors sqlsource's: a
rich dataset.Dataset implementation (entropy, feature-value counting,
criteria-based subsetting) becomes a single read-only, forward-only
query against one fixed document shape.
*/
package mongosource

import (
	"fmt"

	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/pbanos/ebmgrow/sampledset"
)

type document struct {
	Bin          int       `bson:"bin"`
	Residuals    []float64 `bson:"residuals"`
	Denominators []float64 `bson:"denominators,omitempty"`
}

// Open takes a MongoDB connection URL and a collection name and
// returns a sampledset.SampledSet backed by that collection, or an
// error if a session cannot be established. Each document is expected
// to hold `{bin, residuals: [K floats], denominators: [K floats]}`,
// with `denominators` absent or omitted for regression (K == 1).
func Open(url, collection string) (sampledset.SampledSet, error) {
	session, err := mgo.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo at %s: %v", url, err)
	}
	return &mongoSet{session, collection}, nil
}

type mongoSet struct {
	session    *mgo.Session
	collection string
}

// Instances reads every document of the collection in a single pass
// and decodes it into a sampledset.Instance.
func (m *mongoSet) Instances() ([]sampledset.Instance, error) {
	s := m.session.Copy()
	defer s.Close()
	var docs []document
	err := s.DB("").C(m.collection).Find(bson.M{}).All(&docs)
	if err != nil {
		return nil, fmt.Errorf("reading instances from collection %s: %v", m.collection, err)
	}
	instances := make([]sampledset.Instance, len(docs))
	for i, d := range docs {
		instances[i] = sampledset.Instance{Bin: d.Bin, Residuals: d.Residuals, Denominators: d.Denominators}
	}
	return instances, nil
}
