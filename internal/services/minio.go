package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var MinioClient *minio.Client

func minioBucket() string {
	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "farmtohome"
	}
	return bucket
}

func ConnectMinio() {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MINIO_ENDPOINT absent — upload d'images désactivé")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		log.Println("⚠️ MinIO non configuré :", err)
		return
	}

	ctx := context.Background()
	bucket := minioBucket()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Println("⚠️ MinIO injoignable :", err)
		return
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Println("⚠️ Erreur création bucket MinIO :", err)
			return
		}
		log.Println("🪣 Bucket créé :", bucket)
	}

	MinioClient = client
	log.Println("✅ Connecté à MinIO :", endpoint)
}

// UploadProductImage stocke l'image sous products/<uuid><ext> et retourne
// son URL publique.
func UploadProductImage(file *multipart.FileHeader) (string, error) {
	if MinioClient == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	bucket := minioBucket()
	objectName := "products/" + uuid.NewString() + filepath.Ext(file.Filename)

	_, err = MinioClient.PutObject(context.Background(), bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, os.Getenv("MINIO_ENDPOINT"), bucket, objectName), nil
}

// RemoveProductImage supprime l'objet derrière une URL d'image, si elle
// pointe bien vers notre bucket. Best effort : on log, on ne bloque pas.
func RemoveProductImage(imageURL string) {
	if MinioClient == nil || imageURL == "" {
		return
	}

	prefix := "/" + minioBucket() + "/"
	idx := strings.Index(imageURL, prefix)
	if idx < 0 {
		return // image externe (URL seed par exemple), rien à supprimer
	}
	objectName := imageURL[idx+len(prefix):]

	if err := MinioClient.RemoveObject(context.Background(), minioBucket(), objectName,
		minio.RemoveObjectOptions{}); err != nil {
		log.Println("⚠️ Erreur suppression image MinIO :", err)
	}
}
