package refdata

import "github.com/ewelton/faredrop/internal/models"

// Built-in reference tables for the carriers and airports the deal search
// hits most often. The upstream endpoint supersedes these when reachable.

var staticAirlines = map[string]models.Airline{
	"AA": {Code: "AA", BusinessName: "AMERICAN AIRLINES", CommonName: "American Airlines"},
	"AS": {Code: "AS", BusinessName: "ALASKA AIRLINES", CommonName: "Alaska Airlines"},
	"B6": {Code: "B6", BusinessName: "JETBLUE AIRWAYS", CommonName: "JetBlue Airways"},
	"DL": {Code: "DL", BusinessName: "DELTA AIR LINES", CommonName: "Delta Air Lines"},
	"F9": {Code: "F9", BusinessName: "FRONTIER AIRLINES", CommonName: "Frontier Airlines"},
	"G4": {Code: "G4", BusinessName: "ALLEGIANT AIR", CommonName: "Allegiant Air"},
	"NK": {Code: "NK", BusinessName: "SPIRIT AIRLINES", CommonName: "Spirit Airlines"},
	"UA": {Code: "UA", BusinessName: "UNITED AIRLINES", CommonName: "United Airlines"},
	"WN": {Code: "WN", BusinessName: "SOUTHWEST AIRLINES", CommonName: "Southwest Airlines"},
}

var staticAirports = map[string]models.Airport{
	"ATL": {Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport"},
	"BOS": {Code: "BOS", Name: "Boston Logan International Airport"},
	"DAL": {Code: "DAL", Name: "Dallas Love Field"},
	"DEN": {Code: "DEN", Name: "Denver International Airport"},
	"DFW": {Code: "DFW", Name: "Dallas/Fort Worth International Airport"},
	"JFK": {Code: "JFK", Name: "John F. Kennedy International Airport"},
	"LAX": {Code: "LAX", Name: "Los Angeles International Airport"},
	"LGA": {Code: "LGA", Name: "LaGuardia Airport"},
	"MCO": {Code: "MCO", Name: "Orlando International Airport"},
	"MHT": {Code: "MHT", Name: "Manchester-Boston Regional Airport"},
	"ORD": {Code: "ORD", Name: "Chicago O'Hare International Airport"},
	"SEA": {Code: "SEA", Name: "Seattle-Tacoma International Airport"},
	"SFO": {Code: "SFO", Name: "San Francisco International Airport"},
}
