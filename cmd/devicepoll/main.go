package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Ramzi-dr/peoplecounting/internal/device"
)

// Inlined device defaults; override with flags when polling another unit.
const (
	defaultAddress  = "http://10.8.1.101"
	defaultUsername = "admin"
	defaultPassword = "2008-TheNuance"
	defaultChannel  = 1
	defaultRegion   = 1
)

func main() {
	address := flag.String("address", defaultAddress, "Device base URL")
	username := flag.String("user", defaultUsername, "Digest auth username")
	password := flag.String("pass", defaultPassword, "Digest auth password")
	channel := flag.Int("channel", defaultChannel, "Video input channel")
	region := flag.Int("region", defaultRegion, "Counting region ID")
	date := flag.String("date", "", "Day to query as YYYY-MM-DD (default today)")
	flag.Parse()

	day := time.Now()
	if *date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *date, time.Local)
		if err != nil {
			log.Fatalf("invalid -date %q: %v", *date, err)
		}
		day = parsed
	}

	client := device.NewClient(*address, *username, *password, *channel)
	result, err := client.Search(context.Background(), device.NewDailyQuery(day, *region))
	if err != nil {
		// Retries are already exhausted at this point; report and exit.
		log.Printf("Failed after %d attempts. Exiting.", device.MaxAttempts)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Println(string(out))
}
