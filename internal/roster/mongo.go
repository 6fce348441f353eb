package roster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// mongoRepo stores the roster in a hosted MongoDB collection.
type mongoRepo struct {
	col *mongo.Collection
}

// Connect dials the document store and returns a Repo over its
// "students" collection, plus a close function for shutdown.
func Connect(ctx context.Context, uri, database string) (Repo, func(context.Context) error, error) {
	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect document store: %w", err)
	}
	if err := client.Ping(dialCtx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping document store: %w", err)
	}

	repo := &mongoRepo{col: client.Database(database).Collection("students")}
	return repo, client.Disconnect, nil
}

func (r *mongoRepo) List(ctx context.Context) ([]Student, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cur.Close(ctx)

	var students []Student
	for cur.Next(ctx) {
		var s Student
		if err := cur.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		students = append(students, s)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (r *mongoRepo) Add(ctx context.Context, name, avatarColor, icon string) (Student, error) {
	s := Student{
		ID:          uuid.New().String(),
		Name:        name,
		AvatarColor: avatarColor,
		Icon:        icon,
	}
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return Student{}, fmt.Errorf("add student: %w", err)
	}
	return s, nil
}

func (r *mongoRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepo) RecordStudy(ctx context.Context, id string, wordsLearned int) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"totalWordsLearned": wordsLearned},
		"$set": bson.M{"lastStudyDate": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("record study: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepo) RecordQuiz(ctx context.Context, id string, score int) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"quizzesTaken": 1},
		"$max": bson.M{"highScore": score},
	})
	if err != nil {
		return fmt.Errorf("record quiz: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IsNotFound reports whether err means the student does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, mongo.ErrNoDocuments)
}
