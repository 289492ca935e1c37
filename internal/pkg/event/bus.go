/*
 * @Description: 一个带固定Worker池的异步事件总线
 * @Author: 安知鱼
 * @Date: 2025-07-10 19:06:12
 * @LastEditTime: 2026-10-14 12:55:27
 * @LastEditors: 安知鱼
 */
package event

import (
	"log"
	"sync"
)

// 定义事件类型
type Topic string

const (
	// ContactSubmitted 新的联系表单提交已入库，负载为 ContactSubmittedPayload
	ContactSubmitted Topic = "contact:submitted"
	// ContactTriaged 提交的回复状态、备注或数量发生变化，负载为受影响的数量
	ContactTriaged Topic = "contact:triaged"
	// PageChanged 页面内容或发布状态发生变化，负载为 PageChangedPayload
	PageChanged Topic = "page:changed"
)

// ContactSubmittedPayload 联系表单提交事件负载
type ContactSubmittedPayload struct {
	ID      uint
	Service string
}

// PageChangedPayload 页面变化事件负载
type PageChangedPayload struct {
	ID      uint
	URLPath string
}

// 事件处理器函数类型
type Handler func(payload interface{})

// Event 是在通道中传递的事件结构
type Event struct {
	Topic   Topic
	Payload interface{}
}

// EventBus 实现了基于Worker池的异步事件总线
type EventBus struct {
	mu        sync.RWMutex
	handlers  map[Topic][]Handler
	eventChan chan Event
	closed    bool
	wg        sync.WaitGroup
}

// 定义Worker池和通道的配置
const (
	DefaultWorkerCount = 4    // 默认启动4个后台Worker
	DefaultChannelSize = 1024 // 默认事件通道缓冲区大小
)

// NewEventBus 创建并启动一个新的事件总线
func NewEventBus() *EventBus {
	bus := &EventBus{
		handlers:  make(map[Topic][]Handler),
		eventChan: make(chan Event, DefaultChannelSize),
	}
	for i := 0; i < DefaultWorkerCount; i++ {
		bus.wg.Add(1)
		go bus.worker(i + 1)
	}
	return bus
}

// worker 不断从通道中读取并处理事件
func (b *EventBus) worker(workerID int) {
	defer b.wg.Done()
	for event := range b.eventChan {
		b.mu.RLock()
		handlers := append([]Handler(nil), b.handlers[event.Topic]...)
		b.mu.RUnlock()
		for _, handler := range handlers {
			b.dispatch(workerID, event, handler)
		}
	}
}

func (b *EventBus) dispatch(workerID int, event Event, handler Handler) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[EventBus] Worker %d: handler for '%s' panicked: %v", workerID, event.Topic, r)
		}
	}()
	handler(event.Payload)
}

// Subscribe 订阅一个事件
func (b *EventBus) Subscribe(topic Topic, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], handler)
}

// Publish 非阻塞地发布一个事件；通道已满或总线已关闭时丢弃
func (b *EventBus) Publish(topic Topic, payload interface{}) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	select {
	case b.eventChan <- Event{Topic: topic, Payload: payload}:
	default:
		log.Printf("[EventBus] WARN: Event channel is full. Dropping event for topic '%s'.", topic)
	}
}

// Shutdown 关闭事件总线，等待已入队的事件处理完毕
func (b *EventBus) Shutdown() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.eventChan)
	b.mu.Unlock()

	log.Println("[EventBus] Shutting down...")
	b.wg.Wait()
	log.Println("[EventBus] All workers have stopped.")
}
