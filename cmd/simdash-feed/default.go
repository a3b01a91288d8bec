// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

package main

// defaultScenario is a looping pattern circuit: takeoff, climb,
// cruise, a descending turn, approach, touchdown, rollout. Throttle is
// deliberately never sent so the dashboard shows its RPM-derived
// estimate. Zero-duration segments are steps (rotation, touchdown);
// everything else ramps.
func defaultScenario() *Scenario {
	return &Scenario{
		Name:   "F-16C",
		RateHz: 20,
		Loop:   true,
		Segments: []Segment{
			// Holding short, engine at idle.
			{DurationSeconds: 0, State: map[string]float64{
				"lat": 36.2462, "lon": -115.0340,
				"alt_msl": 570, "alt_agl": 0,
				"ias_ms": 0, "tas_ms": 0, "mach": 0, "vv_ms": 0, "aoa_rad": 0,
				"att.pitch": 0, "att.bank": 0, "att.yaw": 0.61,
				"accel.x": 0, "accel.y": 0, "accel.z": 1.0,
				"engine.rpm": 68, "engine.temp": 420, "engine.fuelf": 600,
				"engine.noz": 0.9, "engine.noz_present": 1,
				"mech.gear": 1, "mech.flaps": 0, "mech.airbrake": 0,
				"mech.hook": 0, "mech.wow": 1,
			}},
			// Takeoff roll.
			{DurationSeconds: 20, State: map[string]float64{
				"ias_ms": 80, "tas_ms": 82, "mach": 0.24,
				"accel.x": 0.4,
				"engine.rpm": 99, "engine.temp": 700, "engine.fuelf": 4600,
				"engine.noz": 0.2,
			}},
			// Rotation.
			{DurationSeconds: 0, State: map[string]float64{
				"mech.wow": 0, "vv_ms": 12, "att.pitch": 0.20, "aoa_rad": 0.14,
			}},
			// Gear up, initial climb.
			{DurationSeconds: 15, State: map[string]float64{
				"alt_msl": 900, "alt_agl": 330,
				"ias_ms": 140, "tas_ms": 150, "mach": 0.45,
				"accel.z": 1.2,
				"mech.gear": 0,
			}},
			// Climb to cruise and level off.
			{DurationSeconds: 60, State: map[string]float64{
				"lat": 36.4000, "lon": -114.8500,
				"alt_msl": 3000, "alt_agl": 2400,
				"ias_ms": 180, "tas_ms": 200, "mach": 0.62,
				"vv_ms": 0, "aoa_rad": 0.04,
				"att.pitch": 0.05, "att.yaw": 1.20,
				"accel.x": 0, "accel.z": 1.0,
				"engine.rpm": 92, "engine.temp": 650, "engine.fuelf": 3200,
				"engine.noz": 0.35,
			}},
			// Descending turn back toward the field.
			{DurationSeconds: 45, State: map[string]float64{
				"lat": 36.3300, "lon": -114.9500,
				"alt_msl": 1200, "alt_agl": 620,
				"ias_ms": 150, "tas_ms": 158, "mach": 0.45,
				"vv_ms": -8, "aoa_rad": 0.10,
				"att.pitch": -0.03, "att.bank": 0.52, "att.yaw": 2.80,
				"accel.z": 1.4,
			}},
			// Final approach, dirty.
			{DurationSeconds: 30, State: map[string]float64{
				"lat": 36.2462, "lon": -115.0340,
				"alt_msl": 590, "alt_agl": 15,
				"ias_ms": 75, "tas_ms": 78, "mach": 0.22,
				"vv_ms": -3, "aoa_rad": 0.19,
				"att.pitch": 0.08, "att.bank": 0, "att.yaw": 0.61,
				"accel.z": 1.1,
				"engine.rpm": 85, "engine.temp": 560, "engine.fuelf": 2200,
				"engine.noz": 0.6,
				"mech.gear": 1, "mech.flaps": 0.6, "mech.airbrake": 0.3,
			}},
			// Touchdown.
			{DurationSeconds: 0, State: map[string]float64{
				"mech.wow": 1, "vv_ms": 0, "att.pitch": 0.04,
			}},
			// Rollout to a stop.
			{DurationSeconds: 20, State: map[string]float64{
				"alt_msl": 570, "alt_agl": 0,
				"ias_ms": 0, "tas_ms": 0, "mach": 0, "aoa_rad": 0,
				"att.pitch": 0,
				"accel.x": -0.4,
				"engine.rpm": 68, "engine.temp": 480, "engine.fuelf": 700,
				"engine.noz": 0.9,
				"mech.airbrake": 1,
			}},
		},
	}
}
