package client_test

import (
	"context"
	"fmt"
	"log"

	"github.com/telewatch/telewatch/pkg/client"
)

// Example demonstrates basic usage of the Telewatch client
func Example() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.telewatch.io",
		Token:   "your-jwt",
	})

	ctx := context.Background()

	rules, err := c.Alerts().List(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d alert rules\n", len(rules))
}

// ExampleAlertRuleService_Create demonstrates creating an alert rule
func ExampleAlertRuleService_Create() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.telewatch.io",
		Token:   "your-jwt",
	})

	rule, err := c.Alerts().Create(context.Background(), client.CreateAlertRuleRequest{
		Name:      "High ingest rate",
		Metric:    "ingest_per_min",
		Operator:  "gt",
		Threshold: 100,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Created rule: %s\n", rule.ID)
}

// ExampleEvaluationService_Run demonstrates triggering an evaluation
func ExampleEvaluationService_Run() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.telewatch.io",
		Token:   "your-jwt",
	})

	report, err := c.Evaluations().Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Evaluated %d rules, created %d events\n",
		report.RulesEvaluated, report.EventsCreated)
	for name, value := range report.Metrics {
		fmt.Printf("  %s = %v\n", name, value)
	}
}

// ExampleEventService_List demonstrates listing recent alert events
func ExampleEventService_List() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.telewatch.io",
		Token:   "your-jwt",
	})

	events, err := c.Events().List(context.Background(), &client.EventListOptions{Limit: 20})
	if err != nil {
		log.Fatal(err)
	}

	for _, e := range events {
		fmt.Printf("%s %s\n", e.TriggeredAt.Format("2006-01-02 15:04:05"), e.Message)
	}
}

// ExampleClient_Health demonstrates checking API health
func ExampleClient_Health() {
	c := client.NewClient(client.Config{
		BaseURL: "https://api.telewatch.io",
	})

	health, err := c.Health(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("API Status: %s\n", health.Status)
}
