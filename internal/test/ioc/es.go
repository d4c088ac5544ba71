package testioc

import (
	"time"

	"github.com/olivere/elastic/v7"
)

var esClient *elastic.Client

func InitES() *elastic.Client {
	if esClient != nil {
		return esClient
	}
	const timeout = 10 * time.Second
	client, err := elastic.NewClient(
		elastic.SetURL("http://127.0.0.1:9200"),
		elastic.SetSniff(false),
		elastic.SetHealthcheckTimeoutStartup(timeout),
	)
	if err != nil {
		panic(err)
	}
	esClient = client
	return esClient
}
