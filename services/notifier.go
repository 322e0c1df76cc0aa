package services

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/rs/zerolog/log"
)

var ErrNoDeviceToken = errors.New("device token missing")

type Notifier interface {
	Notify(ctx context.Context, deviceToken string, title string, body string, data map[string]string) error
}

type FirebaseNotifier struct {
	App *firebase.App
}

func NewFirebaseNotifier(ctx context.Context) (*FirebaseNotifier, error) {
	app, err := firebase.NewApp(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}
	return &FirebaseNotifier{App: app}, nil
}

func stringMapToInterfaceMap(stringMap map[string]string) map[string]interface{} {
	interfaceMap := make(map[string]interface{})
	for key, value := range stringMap {
		interfaceMap[key] = value
	}
	return interfaceMap
}

func (n *FirebaseNotifier) Notify(ctx context.Context, deviceToken string, title string, body string, data map[string]string) error {
	if deviceToken == "" {
		return ErrNoDeviceToken
	}
	client, err := n.App.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("init messaging client: %w", err)
	}

	var iosCustomData map[string]interface{}
	if data != nil {
		iosCustomData = stringMapToInterfaceMap(data)
	}
	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		APNS: &messaging.APNSConfig{
			FCMOptions: &messaging.APNSFCMOptions{
				AnalyticsLabel: "smartcloset",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					ContentAvailable: true,
					Alert: &messaging.ApsAlert{
						Title: title,
						Body:  body,
					},
					Sound: "default",
				},
				CustomData: iosCustomData,
			},
		},
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{
				Priority:  messaging.AndroidNotificationPriority(messaging.PriorityMax),
				ChannelID: "smartcloset-daily-look",
			},
			Data: data,
		},
		Token: deviceToken,
	}

	messageID, err := client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	log.Ctx(ctx).Info().Str("message_id", messageID).Msg("push sent")
	return nil
}
