package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/outbreaklab/casecount-api/external/sources"
	"github.com/outbreaklab/casecount-api/pipeline"
	"github.com/outbreaklab/casecount-api/schema"
	"github.com/outbreaklab/casecount-api/store"
)

type ingestJob struct {
	mongoStore         store.MongoStore
	historyStore       *store.HistoryStore
	countries          sources.Source
	states             sources.Source
	countryPopulations map[string]int64
}

// newIngestJob - cron job for the daily crawl: fetch both feeds, build the
// annotated table, and persist it
func newIngestJob(
	mongoStore store.MongoStore,
	historyStore *store.HistoryStore,
	countries sources.Source,
	states sources.Source,
	countryPopulations map[string]int64,
) Cron {
	return &ingestJob{
		mongoStore:         mongoStore,
		historyStore:       historyStore,
		countries:          countries,
		states:             states,
		countryPopulations: countryPopulations,
	}
}

func (j *ingestJob) Run() {
	countryRecords, err := j.countries.Fetch()
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("fetch countries data")
		return
	}
	stateRecords, err := j.states.Fetch()
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("fetch states data")
		return
	}

	raw := make([]schema.CaseRecord, 0, len(stateRecords)+2*len(countryRecords))
	raw = append(raw, stateRecords...)
	raw = append(raw, countryRecords...)
	raw = append(raw, sources.WorldAggregates(countryRecords, j.countryPopulations)...)

	table := pipeline.BuildCaseTable(raw)
	dataTable := pipeline.BuildDataTable(table)

	isNew, err := j.historyStore.IsNewData(dataTable)
	if err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("compare data table")
		return
	}
	if !isNew {
		log.WithField("prefix", logPrefix).Info("no new data; stored data table is up to date")
		return
	}

	if err := j.mongoStore.ReplaceCases(table); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("store case records")
		return
	}
	if err := j.historyStore.ReplaceDataTable(dataTable); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("store data table")
		return
	}

	log.WithFields(log.Fields{
		"prefix":          logPrefix,
		"case rows":       len(table),
		"data table rows": len(dataTable),
	}).Info("stored new data")
}
