// Package device talks to a people-counting camera over its
// digest-authenticated XML API.
package device

import (
	"encoding/xml"
	"fmt"
	"time"
)

const timeLayout = "2006-01-02T15:04:05"

// TimeSpan bounds a counting query to a single interval.
type TimeSpan struct {
	StartTime string `xml:"startTime" json:"startTime"`
	EndTime   string `xml:"endTime" json:"endTime"`
}

// CountingStatisticsDescription is the query payload posted to the device.
type CountingStatisticsDescription struct {
	XMLName       xml.Name   `xml:"CountingStatisticsDescription"`
	StatisticType string     `xml:"statisticType"`
	ReportType    string     `xml:"reportType"`
	TimeSpans     []TimeSpan `xml:"timeSpanList>timeSpan"`
	RegionID      int        `xml:"regionID"`
}

// CountingStatistics is one entry of the device's counting report.
type CountingStatistics struct {
	StartTime   string `xml:"startTime" json:"startTime"`
	EndTime     string `xml:"endTime" json:"endTime"`
	EnterCount  int    `xml:"enterCount" json:"enterCount"`
	ExitCount   int    `xml:"exitCount" json:"exitCount"`
	PassByCount int    `xml:"passByCount" json:"passByCount"`
	Duration    int    `xml:"duration" json:"duration"`
}

// CountingStatisticsResult is the device's response document.
type CountingStatisticsResult struct {
	XMLName       xml.Name             `xml:"CountingStatisticsResult" json:"-"`
	StatisticType string               `xml:"statisticType" json:"statisticType"`
	ReportType    string               `xml:"reportType" json:"reportType"`
	Statistics    []CountingStatistics `xml:"countingStatisticsList>countingStatistics" json:"countingStatistics"`
}

// NewDailyQuery builds a daily all-statistics query covering the full
// calendar day of date for the given region.
func NewDailyQuery(date time.Time, region int) *CountingStatisticsDescription {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())
	return &CountingStatisticsDescription{
		StatisticType: "all",
		ReportType:    "daily",
		TimeSpans: []TimeSpan{{
			StartTime: start.Format(timeLayout),
			EndTime:   end.Format(timeLayout),
		}},
		RegionID: region,
	}
}

// Encode renders the query as an XML document with header.
func (d *CountingStatisticsDescription) Encode() ([]byte, error) {
	body, err := xml.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode counting query: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
