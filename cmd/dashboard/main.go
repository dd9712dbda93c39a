// @title Recruitment Fulfillment Dashboard API
// @version 1.0
// @description Filters recruitment records and serves fulfillment KPIs and chart data.
// @host localhost:8080
// @BasePath /api/v1
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
