package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/atuservicios/servicio-api/schema"
)

// ProviderProfile - operations over the discoverable provider mirror
type ProviderProfile interface {
	UpsertProfile(profile schema.Profile) error
	UpdateProfileLocation(accountNumber string, latitude, longitude float64) error
	NearbyProviders(serviceType schema.ServiceType, distance int, cords schema.Location) ([]schema.Profile, error)
}

// UpsertProfile writes the provider mirror of an account with merge
// semantics, keeping a previously reported location if the update carries
// none.
func (m *mongoDB) UpsertProfile(profile schema.Profile) error {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	update := bson.M{
		"account_number": profile.AccountNumber,
		"service_type":   profile.ServiceType,
		"is_available":   profile.IsAvailable,
	}
	if profile.Location != nil {
		update["location"] = profile.Location
	}

	_, err := c.UpdateOne(ctx,
		bson.M{"account_number": profile.AccountNumber},
		bson.M{"$set": update},
		options.Update().SetUpsert(true),
	)
	return err
}

// UpdateProfileLocation refreshes the geo point of a provider profile
func (m *mongoDB) UpdateProfileLocation(accountNumber string, latitude, longitude float64) error {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := c.UpdateOne(ctx,
		bson.M{"account_number": accountNumber},
		bson.M{"$set": bson.M{
			"location": schema.GeoJSON{
				Type:        "Point",
				Coordinates: []float64{longitude, latitude},
			},
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// NearbyProviders finds available providers of a service type within some
// distance in meters, nearest first
func (m *mongoDB) NearbyProviders(serviceType schema.ServiceType, distance int, cords schema.Location) ([]schema.Profile, error) {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"service_type": serviceType,
		"is_available": true,
		"location": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{cords.Longitude, cords.Latitude},
				},
				"$maxDistance": distance,
			},
		},
	}

	cur, err := c.Find(ctx, query)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby providers with error: %s", err)
		return nil, fmt.Errorf("nearby providers query with error: %s", err)
	}

	profiles := make([]schema.Profile, 0)
	for cur.Next(ctx) {
		var p schema.Profile
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}
