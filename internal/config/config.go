package config

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Population band
	InitialPulses = 4
	MaxPulses     = 6
	SpawnChance   = 0.025

	// Pulse parameters
	MinSpeed     = 1.5
	MaxSpeed     = 3.5
	MinThickness = 0.5
	MaxThickness = 1.5
	MinHue       = 270
	MaxHue       = 310
	MinTrail     = 6
	MaxTrail     = 12
	TurnJitter   = 0.06
	EdgeSpread   = 0.5

	// Pulses only start dying once they wander past this margin
	BoundsMargin = 50
	LifeDecay    = 0.05

	// Branch parameters
	BranchChance    = 0.015
	MaxBranches     = 2
	BranchSpread    = 0.75
	BranchTurn      = 0.075
	BranchSpeedMul  = 0.6
	BranchLife      = 0.6
	BranchLifeDecay = 0.025
	BranchTrail     = 10

	// Rendering
	FadeAlpha  = 0.4
	HeadRadius = 8

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	// Audio
	SampleRate = 44100
)
