package main

import (
	"log"

	"zonewatch/internal/model"
	"zonewatch/internal/service/occupancy"
	"zonewatch/internal/service/zone"
)

// runDemo answers the four fleet questions against the loaded zones and
// writes a scene GeoJSON for visualization.
func runDemo(registry *zone.Registry) {
	vehicle1 := mustVehicle([][]float64{{1, 4}, {3, 6}, {5, 4}, {3, 2}})
	vehicle2 := mustVehicle([][]float64{{-2, -2}, {-6, -2}, {-6, -4}, {-2, -4}})
	vehicle3 := mustVehicle([][]float64{{-3, 9}, {-3, 11}, {-5, 11}, {-5, 9}})
	vehicles := []*model.Vehicle{vehicle1, vehicle2, vehicle3}

	operatingZones := registry.ZonesByType("autonomousOperatingZone")
	truckZones := registry.ZonesByType("singleTruckZone")
	if len(operatingZones) == 0 || len(truckZones) == 0 {
		log.Println("Demo skipped: zone file lacks an autonomousOperatingZone or singleTruckZone")
		return
	}
	operatingZone := operatingZones[0]
	truckZone := truckZones[0]

	// Question 1: containment in the autonomous operating zone
	log.Println("Is the vehicle contained in the autonomous operating zone?")
	for i, vehicle := range vehicles {
		contained, _ := occupancy.Contained(operatingZone, vehicle)
		log.Printf("Vehicle %d contained in autonomous operating zone: %v", i+1, contained)
	}

	// Question 2: intersection with the single truck zone
	log.Println("Is any part of the vehicle intersecting the single truck zone?")
	for i, vehicle := range vehicles {
		intersects, _ := occupancy.Intersects(truckZone, vehicle)
		log.Printf("Vehicle %d is intersecting the single truck zone: %v", i+1, intersects)
	}

	// Question 3: intersection with an already occupied single truck zone
	log.Println("Is any part of the vehicle intersecting the single truck zone that is already occupied by another vehicle?")
	for i, vehicle := range vehicles {
		others := make([]*model.Vehicle, 0, len(vehicles)-1)
		for _, v := range vehicles {
			if v != vehicle {
				others = append(others, v)
			}
		}
		occupied, _ := occupancy.IntersectsOccupied(truckZone, vehicle, others)
		log.Printf("Vehicle %d is intersecting the occupied single truck zone: %v", i+1, occupied)
	}

	// Question 4: pairwise buffer intersection after a communication loss
	log.Println("If vehicle 2 has been missing for 5 seconds, are any vehicle buffers intersecting?")
	intersectWithoutDelay, _ := occupancy.AnyPairIntersects(vehicles)
	if err := vehicle2.SetUpdateAge(5.0); err != nil {
		log.Fatalf("Failed to set update age: %v", err)
	}
	intersectWithDelay, _ := occupancy.AnyPairIntersects(vehicles)
	log.Printf("Vehicle buffers intersect without communication loss: %v", intersectWithoutDelay)
	log.Printf("Vehicle buffers intersect after a 5 second communication loss of vehicle 2: %v", intersectWithDelay)

	exportSceneToGeoJSON(registry.AllZones(), vehicles, vehicle2, "scene.json")
}

func mustVehicle(vertices [][]float64) *model.Vehicle {
	vehicle, err := model.NewVehicle(vertices)
	if err != nil {
		log.Fatalf("Failed to construct demo vehicle: %v", err)
	}
	return vehicle
}
