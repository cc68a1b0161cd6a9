package main

/*
Example script for the lrukv Go SDK.

Run this after the lrukv server has started (default address: http://localhost:8080).
It will:
  1. Perform a health-check.
  2. Write more keys than a small cache can hold.
  3. Read them back and show which ones were evicted.
  4. Print the server counters and purge the cache.

Usage:
$ go run example.go
*/

import (
	"fmt"
	"log"

	"lrukv/client-sdk/Go/client"
)

func main() {
	c := client.NewClient("http://localhost:8080")

	ok, err := c.HealthCheck()
	if err != nil || !ok {
		log.Fatalf("health check failed: %v", err)
	}

	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("user:%d", i)
		if err := c.Put(key, fmt.Sprintf("value-%d", i)); err != nil {
			log.Fatal(err)
		}
	}

	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("user:%d", i)
		value, ok, err := c.Get(key)
		if err != nil {
			log.Fatal(err)
		}
		if ok {
			fmt.Printf("%s = %s\n", key, value)
		} else {
			fmt.Printf("%s evicted\n", key)
		}
	}

	stats, err := c.Stats()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("len=%d cap=%d hits=%d misses=%d evictions=%d\n",
		stats.Len, stats.Cap, stats.Hits, stats.Misses, stats.Evictions)

	if err := c.Purge(); err != nil {
		log.Fatal(err)
	}
}
