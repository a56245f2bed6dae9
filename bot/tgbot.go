package bot

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"SpliceSafari/core"
	"SpliceSafari/lib/sl"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

const (
	errorResponse = "Sorry, the animal lab is closed right now. Please try again later."
	helpText      = "You can use the following commands:\n" +
		"/help - show this help\n" +
		"/spin - spin both wheels and meet a new species\n"
	spinTimeout = 3 * time.Minute
)

type TgBot struct {
	conf    *core.Config
	api     *tgbotapi.BotAPI
	service core.MashupService
	log     *slog.Logger
	done    chan struct{}
}

func NewTgBot(conf *core.Config, service core.MashupService, log *slog.Logger) (*TgBot, error) {
	api, err := tgbotapi.NewBotAPI(conf.Telegram.ApiKey)
	if err != nil {
		return nil, fmt.Errorf("creating bot api: %w", err)
	}
	return &TgBot{
		conf:    conf,
		api:     api,
		service: service,
		log:     log.With(sl.Module("telegram"), slog.String("bot", api.Self.UserName)),
		done:    make(chan struct{}),
	}, nil
}

// Start polls for updates until Stop is called
func (t *TgBot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates, err := t.api.GetUpdatesChan(u)
	if err != nil {
		return fmt.Errorf("getting updates: %w", err)
	}
	t.log.Info("telegram bot started")

	for {
		select {
		case <-t.done:
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			t.handle(update)
		}
	}
}

// Stop must be called once
func (t *TgBot) Stop() {
	t.api.StopReceivingUpdates()
	close(t.done)
}

func (t *TgBot) handle(update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}

	incoming := update.Message
	switch incoming.Command() {
	case "spin":
		t.log.With(slog.Int64("chat", incoming.Chat.ID)).Debug("spin requested")
		go t.sendMashup(incoming.Chat.ID)
	case "help", "start":
		t.plainResponse(incoming.Chat.ID, helpText)
	}
}

func (t *TgBot) sendMashup(chatId int64) {
	ctx, cancel := context.WithTimeout(context.Background(), spinTimeout)
	defer cancel()

	stop := t.keepUploading(chatId)
	mashup, err := t.service.Spin(ctx)
	close(stop)
	if err != nil {
		t.log.Error("spin failed", sl.Err(err))
		t.plainResponse(chatId, errorResponse)
		return
	}

	msg, err := composeUpload(chatId, mashup)
	if err != nil {
		t.log.Error("composing upload", sl.Err(err))
		t.plainResponse(chatId, errorResponse)
		return
	}
	if _, err = t.api.Send(msg); err != nil {
		t.log.Error("sending poster", sl.Err(err))
	}
}

// keepUploading repeats the upload chat action every 5 seconds until the returned channel is closed
func (t *TgBot) keepUploading(chatId int64) chan struct{} {
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			if _, err := t.api.Send(tgbotapi.NewChatAction(chatId, tgbotapi.ChatUploadPhoto)); err != nil {
				t.log.Debug("sending chat action", sl.Err(err))
			}
			select {
			case <-ticker.C:
			case <-stop:
				return
			}
		}
	}()
	return stop
}

func (t *TgBot) plainResponse(chatId int64, text string) {
	msg := tgbotapi.NewMessage(chatId, text)
	if _, err := t.api.Send(msg); err != nil {
		t.log.Error("sending message", sl.Err(err))
	}
}

func caption(m *core.Mashup) string {
	return fmt.Sprintf("%s\n%s + %s", m.SpeciesName, m.Animals[0], m.Animals[1])
}

// composeUpload sends raster posters as photos; SVG is not accepted there and goes as a document
func composeUpload(chatId int64, m *core.Mashup) (tgbotapi.Chattable, error) {
	mimeType, data, err := decodeDataURI(m.Image.ImageData)
	if err != nil {
		return nil, err
	}

	switch mimeType {
	case "image/png", "image/jpeg", "image/webp":
		ext := strings.TrimPrefix(mimeType, "image/")
		photo := tgbotapi.NewPhotoUpload(chatId, tgbotapi.FileBytes{Name: "mashup." + ext, Bytes: data})
		photo.Caption = caption(m)
		return photo, nil
	case "image/svg+xml":
		doc := tgbotapi.NewDocumentUpload(chatId, tgbotapi.FileBytes{Name: "mashup.svg", Bytes: data})
		doc.Caption = caption(m)
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported image type %q", mimeType)
	}
}

func decodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, errors.New("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errors.New("data URI without payload")
	}
	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, errors.New("data URI is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding payload: %w", err)
	}
	return mimeType, data, nil
}
