package main

import (
	"fmt"
	"log"

	"temple-server/config"
	"temple-server/di"
)

func main() {
	container := di.NewContainer("prod")

	// One-shot dataset load; a failure leaves the analytics views on their
	// empty defaults and the error surfaces through the summary endpoint.
	datasetPath := config.GetResourcePath(config.CROWD_DATASET_RESOURCE)
	if err := container.DatasetLoader.Load(datasetPath); err != nil {
		log.Printf("[MAIN] Continuing without dataset: %v", err)
	}

	fmt.Println("starting realtime metrics poller!")
	container.MetricsPoller.Start()

	fmt.Println("starting server!")
	container.TempleOpsHttpServer.Start(func() {
		container.MetricsPoller.Stop()
	})
}
