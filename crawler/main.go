package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/outbreaklab/casecount-api/external/sources"
	"github.com/outbreaklab/casecount-api/store"
)

const logPrefix = "cron"

// Cron - a job run once per crawl
type Cron interface {
	Run()
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("casecount")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)
	defer mStore.Close()

	ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		log.Panicf("open postgres with error: %s", err)
	}
	defer ormDB.Close()

	hStore := store.NewHistoryStore(ormDB)
	if err := hStore.Migrate(); err != nil {
		log.Panicf("migrate data table with error: %s", err)
	}

	dataDir := viper.GetString("data.dir")

	countryPopulations, err := sources.LoadCountryPopulations(dataDir)
	if err != nil {
		log.Panicf("load country populations with error: %s", err)
	}
	statePopulations, err := sources.LoadStatePopulations(dataDir)
	if err != nil {
		log.Panicf("load state populations with error: %s", err)
	}
	stateNames, err := sources.LoadStateNames(dataDir)
	if err != nil {
		log.Panicf("load state names with error: %s", err)
	}

	job := newIngestJob(
		mStore,
		hStore,
		sources.NewCountriesDaily(sources.CountriesDailyURL, countryPopulations),
		sources.NewStatesDaily(sources.StatesDailyURL, statePopulations, stateNames),
		countryPopulations,
	)
	job.Run()

	if days := viper.GetInt("mongo.retention_days"); days > 0 {
		cutoff := time.Now().AddDate(0, 0, -days)
		if err := mStore.DeleteCasesBefore(cutoff); err != nil {
			log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("prune old case records")
		}
	}
}
