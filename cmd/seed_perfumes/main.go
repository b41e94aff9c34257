package main

import (
	"context"
	"log"

	"github.com/aureapp/aure-backend/config"
	"github.com/aureapp/aure-backend/internal/database"
	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/service"
)

var samplePerfumes = []models.Perfume{
	{
		Name:        "Santal 33",
		House:       "Le Labo",
		ScentFamily: models.FamilyWoody,
		Performance: models.PerformanceBalanced,
		Notes: models.NotePyramid{
			Top:   []string{"cardamom", "iris", "violet"},
			Heart: []string{"ambrox", "Australian sandalwood"},
			Base:  []string{"cedarwood", "leather", "musk"},
		},
		AuraWords:    models.JSONBStringArray{"Grounded", "Confident", "Warm"},
		OutfitStyles: models.JSONBStringArray{"minimalist", "clean", "corporate"},
		Occasions:    models.JSONBStringArray{"work", "casual", "date"},
		Moods:        models.JSONBStringArray{"confident", "mysterious"},
		WeatherProfile: models.WeatherProfile{
			IdealTemperature: []models.TemperatureCategory{models.TempMild, models.TempCool},
			IdealHumidity:    []models.HumidityCategory{models.HumidityDry, models.HumidityModerate},
		},
		Description: "A unisex icon with creamy sandalwood and smoky leather.",
	},
	{
		Name:        "Blanche",
		House:       "Byredo",
		ScentFamily: models.FamilyFresh,
		Performance: models.PerformanceOfficeSafe,
		Notes: models.NotePyramid{
			Top:   []string{"pink pepper", "aldehyde"},
			Heart: []string{"peony", "violet", "rose"},
			Base:  []string{"blonde woods", "sandalwood", "musk"},
		},
		AuraWords:    models.JSONBStringArray{"Pure", "Serene", "Ethereal"},
		OutfitStyles: models.JSONBStringArray{"clean", "minimalist", "romantic"},
		Occasions:    models.JSONBStringArray{"work", "casual"},
		Moods:        models.JSONBStringArray{"soft", "confident"},
		WeatherProfile: models.WeatherProfile{
			IdealTemperature: []models.TemperatureCategory{models.TempMild, models.TempWarm},
			IdealHumidity:    []models.HumidityCategory{models.HumidityModerate},
		},
		Description: "Crisp white linens and delicate florals in perfect harmony.",
	},
	{
		Name:        "Baccarat Rouge 540",
		House:       "Maison Francis Kurkdjian",
		ScentFamily: models.FamilyAmber,
		Performance: models.PerformanceLoud,
		Notes: models.NotePyramid{
			Top:   []string{"saffron", "jasmine"},
			Heart: []string{"amberwood", "ambergris"},
			Base:  []string{"fir resin", "cedar"},
		},
		AuraWords:    models.JSONBStringArray{"Magnetic", "Bold", "Luminous"},
		OutfitStyles: models.JSONBStringArray{"glam", "romantic"},
		Occasions:    models.JSONBStringArray{"date", "event"},
		Moods:        models.JSONBStringArray{"confident", "mysterious"},
		WeatherProfile: models.WeatherProfile{
			IdealTemperature: []models.TemperatureCategory{models.TempCool, models.TempCold},
			IdealHumidity:    []models.HumidityCategory{models.HumidityDry},
		},
		Description: "A modern classic with glowing amber and crystalline woods.",
	},
	{
		Name:        "Mojave Ghost",
		House:       "Byredo",
		ScentFamily: models.FamilyFloral,
		Performance: models.PerformanceBalanced,
		Notes: models.NotePyramid{
			Top:   []string{"ambrette", "Jamaican nesberry"},
			Heart: []string{"violet", "sandalwood", "magnolia"},
			Base:  []string{"cedarwood", "musk", "amber"},
		},
		AuraWords:    models.JSONBStringArray{"Dreamy", "Soft", "Captivating"},
		OutfitStyles: models.JSONBStringArray{"romantic", "cozy", "minimalist"},
		Occasions:    models.JSONBStringArray{"casual", "date"},
		Moods:        models.JSONBStringArray{"soft", "playful"},
		WeatherProfile: models.WeatherProfile{
			IdealTemperature: []models.TemperatureCategory{models.TempWarm, models.TempMild},
			IdealHumidity:    []models.HumidityCategory{models.HumidityDry, models.HumidityModerate},
		},
		Description: "A ghostly floral inspired by the Mojave Desert.",
	},
	{
		Name:        "Tobacco Vanille",
		House:       "Tom Ford",
		ScentFamily: models.FamilyGourmand,
		Performance: models.PerformanceLoud,
		Notes: models.NotePyramid{
			Top:   []string{"tobacco leaf", "spicy notes"},
			Heart: []string{"vanilla", "cacao", "tonka bean"},
			Base:  []string{"dried fruits", "wood sap"},
		},
		AuraWords:    models.JSONBStringArray{"Opulent", "Warm", "Indulgent"},
		OutfitStyles: models.JSONBStringArray{"glam", "cozy"},
		Occasions:    models.JSONBStringArray{"event", "date", "home"},
		Moods:        models.JSONBStringArray{"confident", "mysterious"},
		WeatherProfile: models.WeatherProfile{
			IdealTemperature: []models.TemperatureCategory{models.TempCold, models.TempCool},
			IdealHumidity:    []models.HumidityCategory{models.HumidityDry},
		},
		Description: "Rich tobacco and creamy vanilla for cold nights.",
	},
	{
		Name:        "Another 13",
		House:       "Le Labo",
		ScentFamily: models.FamilyMusky,
		Performance: models.PerformanceOfficeSafe,
		Notes: models.NotePyramid{
			Top:   []string{"pear accord"},
			Heart: []string{"ambroxan", "moss", "musk"},
			Base:  []string{"jasmine petals", "ambrette seeds"},
		},
		AuraWords:    models.JSONBStringArray{"Clean", "Modern", "Magnetic"},
		OutfitStyles: models.JSONBStringArray{"minimalist", "clean", "streetwear"},
		Occasions:    models.JSONBStringArray{"work", "casual"},
		Moods:        models.JSONBStringArray{"confident", "playful"},
		WeatherProfile: models.WeatherProfile{
			IdealTemperature: []models.TemperatureCategory{models.TempHot, models.TempWarm},
			IdealHumidity:    []models.HumidityCategory{models.HumidityHumid, models.HumidityModerate},
		},
		Description: "A skin scent that makes you smell like the best version of you.",
	},
	{
		Name:                 "Portrait of a Lady",
		House:                "Frédéric Malle",
		ScentFamily:          models.FamilyFloral,
		SecondaryScentFamily: models.FamilyWoody,
		Performance:          models.PerformanceLoud,
		Notes: models.NotePyramid{
			Top:   []string{"Turkish rose", "raspberry"},
			Heart: []string{"patchouli", "incense", "clove"},
			Base:  []string{"sandalwood", "musk", "amber"},
		},
		AuraWords:    models.JSONBStringArray{"Regal", "Powerful", "Unforgettable"},
		OutfitStyles: models.JSONBStringArray{"glam", "corporate", "romantic"},
		Occasions:    models.JSONBStringArray{"event", "work", "date"},
		Moods:        models.JSONBStringArray{"confident", "mysterious"},
		WeatherProfile: models.WeatherProfile{
			IdealTemperature: []models.TemperatureCategory{models.TempCool, models.TempCold},
			IdealHumidity:    []models.HumidityCategory{models.HumidityDry, models.HumidityModerate},
		},
		Description: "A commanding rose with serious patchouli depth.",
	},
	{
		Name:        "Bergamote 22",
		House:       "Le Labo",
		ScentFamily: models.FamilyFresh,
		Performance: models.PerformanceOfficeSafe,
		Notes: models.NotePyramid{
			Top:   []string{"bergamot", "grapefruit", "orange blossom"},
			Heart: []string{"petitgrain", "vetiver"},
			Base:  []string{"cedarwood", "musk", "amber"},
		},
		AuraWords:    models.JSONBStringArray{"Bright", "Refreshing", "Effortless"},
		OutfitStyles: models.JSONBStringArray{"clean", "minimalist", "streetwear"},
		Occasions:    models.JSONBStringArray{"work", "casual"},
		Moods:        models.JSONBStringArray{"playful", "soft"},
		WeatherProfile: models.WeatherProfile{
			IdealTemperature: []models.TemperatureCategory{models.TempHot, models.TempWarm, models.TempMild},
			IdealHumidity:    []models.HumidityCategory{models.HumidityHumid, models.HumidityModerate},
		},
		Description: "Sunlit citrus for everyday elegance.",
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var count int64
	if err := db.Model(&models.Perfume{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to inspect catalog: %v", err)
	}
	if count > 0 {
		log.Printf("Catalog already has %d perfumes, nothing to do", count)
		return
	}

	svc := service.NewPerfumeService(db)
	ctx := context.Background()
	seeded := 0
	for i := range samplePerfumes {
		if _, err := svc.CreatePerfume(ctx, &samplePerfumes[i]); err != nil {
			log.Fatalf("Failed to seed %q: %v", samplePerfumes[i].Name, err)
		}
		seeded++
	}

	log.Printf("Seeded %d perfumes", seeded)
}
