package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/outbreaklab/casecount-api/schema"
	"github.com/outbreaklab/casecount-api/utils"
)

var (
	ErrCaseDataFetch = fmt.Errorf("fetch case data fail")
	ErrCaseDecode    = fmt.Errorf("decode case data fail")
)

// CaseOperator - case-row persistence. Rows are keyed by (country, state,
// case type, report day); replacing an existing key upserts, so re-running
// ingestion is idempotent and each location keeps one row per day.
type CaseOperator interface {
	ReplaceCases(records []schema.CaseRecord) error
	ListCases() ([]schema.CaseRecord, error)
	DeleteCasesBefore(t time.Time) error
}

// caseFilter is the upsert key of a case row. The key uses the report day
// rather than the raw date: the most recent day's rows are stamped with the
// crawl time, so their raw date changes crawl to crawl (and becomes the next
// midnight once the day is over) while the report day stays put. Keying on
// the raw date would insert a fresh row per crawl and strand the old one.
func caseFilter(r schema.CaseRecord) bson.M {
	return bson.M{
		"country":    r.Country,
		"state":      r.State,
		"case_type":  r.CaseType,
		"report_day": utils.ReportDay(r.Date),
	}
}

func (m *mongoDB) ReplaceCases(records []schema.CaseRecord) error {
	if len(records) == 0 {
		log.WithField("prefix", mongoLogPrefix).Debug("no case records to update")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(caseCollection)
	opts := options.Replace().SetUpsert(true)
	for _, r := range records {
		r.ReportDay = utils.ReportDay(r.Date)
		if _, err := c.ReplaceOne(ctx, caseFilter(r), r, opts); err != nil {
			log.WithFields(log.Fields{"prefix": mongoLogPrefix, "error": err}).Error("replace case record")
			return err
		}
	}

	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "records": len(records)}).Debug("ReplaceCases upserted data")
	return nil
}

// ListCases returns every stored case row sorted by (location, date,
// case type), the ordering the pipeline's selectors rely on.
func (m *mongoDB) ListCases() ([]schema.CaseRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(caseCollection)
	opts := options.Find().SetSort(bson.D{
		{Key: "location", Value: 1},
		{Key: "date", Value: 1},
		{Key: "case_type", Value: 1},
	})
	cur, err := c.Find(ctx, bson.M{}, opts)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("case data find error: %s", err)
		return nil, ErrCaseDataFetch
	}
	defer cur.Close(ctx)

	var records []schema.CaseRecord
	if err := cur.All(ctx, &records); err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("case data decode error: %s", err)
		return nil, ErrCaseDecode
	}
	return records, nil
}

func (m *mongoDB) DeleteCasesBefore(t time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(caseCollection)
	res, err := c.DeleteMany(ctx, bson.M{"date": bson.D{{Key: "$lt", Value: t}}})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Warnf("delete old case records with error: %s", err)
		return err
	}
	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "records": res.DeletedCount}).Debug("DeleteCasesBefore delete data")
	return nil
}
